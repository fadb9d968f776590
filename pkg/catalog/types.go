package catalog

// ComponentType identifies the architectural role of a component. The set is
// closed: formulas and connection references key off these values.
type ComponentType string

const (
	LoadBalancer ComponentType = "load_balancer"
	CDN          ComponentType = "cdn"
	APIGateway   ComponentType = "api_gateway"
	GameServer   ComponentType = "game_server"
	Database     ComponentType = "database"
	Cache        ComponentType = "cache"
	MessageQueue ComponentType = "message_queue"
	Monitoring   ComponentType = "monitoring"
	Security     ComponentType = "security"
	Storage      ComponentType = "storage"
)

// DifficultyLevel tags a component for a target audience.
type DifficultyLevel string

const (
	Beginner     DifficultyLevel = "beginner"
	Intermediate DifficultyLevel = "intermediate"
	Advanced     DifficultyLevel = "advanced"
)

// ValidDifficulty reports whether s is one of the three difficulty tiers.
func ValidDifficulty(s string) bool {
	switch DifficultyLevel(s) {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Position is a diagram placement hint for the frontend.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Metrics holds pre-computed reference values for a component. Values are
// numbers or strings.
type Metrics map[string]interface{}

// ArchitectureComponent is one building block of the platform architecture.
// Components are created once at seed time and never mutated.
type ArchitectureComponent struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Type                ComponentType   `json:"type"`
	Description         string          `json:"description"`
	DetailedExplanation string          `json:"detailed_explanation"`
	Technologies        []string        `json:"technologies"`
	Protocols           []string        `json:"protocols"`
	CapacityMetrics     Metrics         `json:"capacity_metrics"`
	Position            Position        `json:"position"`
	Connections         []ComponentType `json:"connections"`
	DifficultyLevel     DifficultyLevel `json:"difficulty_level"`
	StepOrder           int             `json:"step_order"`
}

// JourneyStep is one stage of the narrated player-request journey.
type JourneyStep struct {
	ID                  string                 `json:"id"`
	StepNumber          int                    `json:"step_number"`
	Title               string                 `json:"title"`
	Description         string                 `json:"description"`
	ComponentsInvolved  []ComponentType        `json:"components_involved"`
	DiagramFocus        []ComponentType        `json:"diagram_focus"`
	TechnicalDetails    map[string]interface{} `json:"technical_details"`
	BeginnerExplanation string                 `json:"beginner_explanation"`
	AdvancedExplanation string                 `json:"advanced_explanation"`
}
