package propertyservice

// Property модель объекта размещения из PropertyService
type Property struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Timezone   string  `json:"timezone"`
	ManagerIDs []int64 `json:"manager_ids"`
}

// IsManagedBy проверяет, является ли пользователь менеджером объекта
func (p *Property) IsManagedBy(userID int64) bool {
	for _, id := range p.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от PropertyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
