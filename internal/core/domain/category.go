package domain

// Category is one of the fixed labels a transaction can be filed under.
type Category string

const (
	CategorySalary     Category = "Salário"
	CategoryHousing    Category = "Moradia"
	CategoryFood       Category = "Alimentação"
	CategoryTransport  Category = "Transporte"
	CategoryLeisure    Category = "Lazer"
	CategoryHealth     Category = "Saúde"
	CategoryEducation  Category = "Educação"
	CategoryShopping   Category = "Compras"
	CategoryCreditCard Category = "Cartão de Crédito"
	CategoryOther      Category = "Outros"
)

// DefaultCategoryColor is used for categories without an entry in the colour table.
const DefaultCategoryColor = "#64748B"

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{
		CategorySalary,
		CategoryHousing,
		CategoryFood,
		CategoryTransport,
		CategoryLeisure,
		CategoryHealth,
		CategoryEducation,
		CategoryShopping,
		CategoryCreditCard,
		CategoryOther,
	}
}

// IsValid reports whether c belongs to the known category set.
func (c Category) IsValid() bool {
	switch c {
	case CategorySalary, CategoryHousing, CategoryFood, CategoryTransport, CategoryLeisure,
		CategoryHealth, CategoryEducation, CategoryShopping, CategoryCreditCard, CategoryOther:
		return true
	}
	return false
}

// Color returns the display colour of the category.
func (c Category) Color() string {
	switch c {
	case CategorySalary:
		return "#10B981"
	case CategoryHousing:
		return "#F59E0B"
	case CategoryFood:
		return "#EF4444"
	case CategoryTransport:
		return "#3B82F6"
	case CategoryLeisure:
		return "#EC4899"
	case CategoryHealth:
		return "#14B8A6"
	case CategoryEducation:
		return "#8B5CF6"
	case CategoryShopping:
		return "#F97316"
	case CategoryCreditCard:
		return "#6366F1"
	case CategoryOther:
		return "#64748B"
	default:
		return DefaultCategoryColor
	}
}
