package evaluator

import (
	"strings"

	"go.uber.org/zap"
)

// Fixed clinical thresholds. A value strictly above its threshold triggers
// the matching condition; conditions are independent, not mutually exclusive.
const (
	HeartRateThreshold     = 120.0 // beats/min
	TemperatureThreshold   = 38.5  // °C
	BloodPressureThreshold = 140.0
)

// Condition messages, in the fixed order they are evaluated and joined.
const (
	MsgHighHeartRate     = "High heart rate"
	MsgHighTemperature   = "High temperature"
	MsgHighBloodPressure = "High blood pressure"
)

// Result 评估结果
type Result struct {
	Triggered bool   `json:"triggered"`
	Message   string `json:"message"` // triggered conditions joined with ", "
}

// Evaluator applies the fixed thresholds to a vitals submission. It is
// stateless; alert bookkeeping belongs to the caller.
type Evaluator struct {
	logger *zap.Logger
}

func NewEvaluator(logger *zap.Logger) *Evaluator {
	return &Evaluator{logger: logger}
}

// Evaluate checks all three conditions unconditionally, in fixed order:
// heart rate, temperature, blood pressure.
func (e *Evaluator) Evaluate(heartRate, temperature, bloodPressure float64) Result {
	var messages []string

	if heartRate > HeartRateThreshold {
		messages = append(messages, MsgHighHeartRate)
	}
	if temperature > TemperatureThreshold {
		messages = append(messages, MsgHighTemperature)
	}
	if bloodPressure > BloodPressureThreshold {
		messages = append(messages, MsgHighBloodPressure)
	}

	result := Result{
		Triggered: len(messages) > 0,
		Message:   strings.Join(messages, ", "),
	}

	if result.Triggered {
		e.logger.Debug("Vitals exceeded thresholds",
			zap.String("conditions", result.Message),
			zap.Float64("heart_rate", heartRate),
			zap.Float64("temperature", temperature),
			zap.Float64("blood_pressure", bloodPressure),
		)
	}

	return result
}
