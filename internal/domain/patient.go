package domain

// Patient 病人领域模型
// IDs are UUIDs generated at registration; records are immutable afterwards
// (no update/deregistration path).
type Patient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}
