package constants

// Kategori pengunjung — enum tetap, selaras dengan check constraint di DB
const (
	CategoryGuest      = "guest"
	CategoryContractor = "contractor"
	CategoryDelivery   = "delivery"
	CategoryInterview  = "interview"
	CategoryVendor     = "vendor"
	CategoryOther      = "other"
)

var VisitorCategories = []string{
	CategoryGuest,
	CategoryContractor,
	CategoryDelivery,
	CategoryInterview,
	CategoryVendor,
	CategoryOther,
}

// dipakai tag validator `oneof`
const VisitorCategoryOneOf = "guest contractor delivery interview vendor other"
