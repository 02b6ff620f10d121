package entities

type Variant struct {
	Size  string
	Color string
	Stock int
}

type Inventory struct {
	AvailableStock int
	ReservedStock  int
}

type Product struct {
	ID        string
	Name      string
	Variants  []Variant
	Inventory Inventory
}

// FindVariant matches a variant by exact (size, color) pair.
func (p Product) FindVariant(size, color string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Size == size && v.Color == color {
			return v, true
		}
	}
	return Variant{}, false
}
