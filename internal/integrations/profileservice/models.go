package profileservice

// Роли профилей в основном бэкенде
const (
	RoleClient  = "client"
	RoleStylist = "stylist"
)

// Profile модель профиля пользователя из ProfileService
type Profile struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"` // client | stylist
	IsActive    bool   `json:"is_active"`
}

// IsStylist возвращает true, если профиль принадлежит стилисту
func (p *Profile) IsStylist() bool {
	return p.Role == RoleStylist
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
