package domain

// Goal representa uma meta do dashboard. O valor corrente é um retrato
// calculado na geração do conjunto, tratado como fato fixo durante a vida
// do processo.
type Goal struct {
	ID      int     `json:"id"`
	Label   string  `json:"label"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
	Unit    string  `json:"unit"`
}

// GoalProgress é o progresso de uma meta: percentual limitado a [0,100] e
// flag de conclusão independente do percentual exibido.
type GoalProgress struct {
	Goal     Goal    `json:"goal"`
	Percent  float64 `json:"percent"`
	Complete bool    `json:"complete"`
}
