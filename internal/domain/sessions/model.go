package sessions

import "time"

// Session es el registro server-side de un login exitoso.
// Es válida solo mientras now < ExpiresAt; una fila vencida
// se trata igual que una fila inexistente.
type Session struct {
	ID     string
	UserID string

	// Token secundario aleatorio, independiente de la credencial firmada.
	Token string

	IPAddress string
	UserAgent string

	CreatedAt    time.Time
	ExpiresAt    time.Time
	LastActiveAt time.Time
}
