package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"vitalwatch/internal/domain"
)

func TestGenerateRosterExport(t *testing.T) {
	views := []domain.PatientView{
		{
			Patient:        domain.Patient{ID: "p1", Name: "Alice", Age: 34},
			Vitals:         domain.VitalReading{PatientID: "p1", HeartRate: 130, Temperature: 37, BloodPressure: 120, Timestamp: time.Now()},
			VitalsRecorded: true,
			Alerts:         []domain.Alert{{PatientID: "p1", Message: "High heart rate"}},
		},
		{
			Patient: domain.Patient{ID: "p2", Name: "Bob", Age: 61},
			Alerts:  []domain.Alert{},
		},
	}

	data, err := GenerateRosterExport(views)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Patients")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 patients

	require.Equal(t, RosterExportHeader[0], rows[0][0])
	require.Equal(t, "Alice", rows[1][1])
	require.Equal(t, "130", rows[1][3])

	// patient without a reading exports dashes
	require.Equal(t, "Bob", rows[2][1])
	require.Equal(t, "-", rows[2][3])
}

func TestGenerateRosterExport_EmptyRoster(t *testing.T) {
	data, err := GenerateRosterExport(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Patients")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
