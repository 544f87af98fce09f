package assistant

// CaseInput es el caso clínico estructurado que se manda a analizar.
type CaseInput struct {
	Species  string
	Breed    string
	Age      int
	Symptoms string
	History  string // antecedentes, opcional
}

// TurnRole identifica quién habló en un turno de chat.
type TurnRole string

const (
	RoleUser      TurnRole = "user"
	RoleAssistant TurnRole = "assistant"
)

// Turn es un intercambio del chat, en orden cronológico.
type Turn struct {
	Role    TurnRole
	Content string
}
