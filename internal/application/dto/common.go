package dto

// ErrorResponse cuerpo de error HTTP. Todos los fallos internos se
// convierten a este sobre; nada llega al cliente como stack trace.
type ErrorResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
