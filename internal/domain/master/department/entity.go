package department

type Department struct {
	ID       string
	Name     string
	IsActive bool
}
