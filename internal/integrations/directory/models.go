package directory

// Provider профиль провайдера (артиста) из основного приложения
type Provider struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
	Active      bool   `json:"active"`
}

// ClientProfile профиль клиента из основного приложения
type ClientProfile struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
}
