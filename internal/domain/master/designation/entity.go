package designation

type Designation struct {
	ID          string
	Name        string
	Description *string
	IsActive    bool
}
