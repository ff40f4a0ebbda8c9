package models

type Diagnosis struct {
	Disease    string   `json:"disease"`
	Confidence int      `json:"confidence"` // percent
	Severity   string   `json:"severity"`   // Ringan | Sedang | Berat
	Symptoms   []string `json:"symptoms"`
	Treatment  []string `json:"treatment"`
	Prevention []string `json:"prevention"`
	Duration   string   `json:"duration"`
}
