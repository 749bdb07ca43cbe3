package data

type Admission struct {
    GRE   float64 `json:"gre"`
    GPA   float64 `json:"gpa"`
    Rank  int     `json:"rank"`
    Admit int     `json:"admit"`
}
