package models

import "gorm.io/datatypes"

// ConversationStatus of a stored AI design conversation
type ConversationStatus string

const (
	ConversationActive    ConversationStatus = "active"
	ConversationCompleted ConversationStatus = "completed"
	ConversationArchived  ConversationStatus = "archived"
)

// SuggestionType groups AI suggestions by what they change
type SuggestionType string

const (
	SuggestionMaterial       SuggestionType = "material"
	SuggestionDimension      SuggestionType = "dimension"
	SuggestionDesign         SuggestionType = "design"
	SuggestionSustainability SuggestionType = "sustainability"
)

// AISuggestion is a recommendation attached to an assistant message
type AISuggestion struct {
	ID          string         `json:"id"`
	Type        SuggestionType `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Impact      string         `json:"impact"` // high, medium, low
	Applied     bool           `json:"applied"`
}

// AIMessage is one turn of a stored conversation
type AIMessage struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"` // user, ai
	Content     string         `json:"content"`
	Timestamp   string         `json:"timestamp"`
	Suggestions []AISuggestion `json:"suggestions,omitempty"`
}

// AIConversation is a read-only design transcript shown on the founder dashboard
type AIConversation struct {
	ID        string                         `gorm:"type:text;primaryKey" json:"id"`
	Title     string                         `gorm:"type:text;not null" json:"title"`
	DateLabel string                         `gorm:"type:text" json:"date"`
	Preview   string                         `gorm:"type:text" json:"preview"`
	Status    ConversationStatus             `gorm:"type:text;not null" json:"status"`
	ProductID string                         `gorm:"type:text" json:"product_id,omitempty"`
	Messages  datatypes.JSONSlice[AIMessage] `gorm:"type:text;not null" json:"messages"`
	SortOrder int                            `gorm:"type:integer;not null;default:0" json:"-"`
}

// TableName specifies the table name
func (AIConversation) TableName() string {
	return "ai_conversations"
}

// SuggestionCount counts messages that carry at least one suggestion
func (c *AIConversation) SuggestionCount() int {
	count := 0
	for _, m := range c.Messages {
		if len(m.Suggestions) > 0 {
			count++
		}
	}
	return count
}

// ConversationSummary is the dashboard card for a conversation
type ConversationSummary struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Date            string             `json:"date"`
	Preview         string             `json:"preview"`
	Status          ConversationStatus `json:"status"`
	ProductID       string             `json:"product_id,omitempty"`
	MessageCount    int                `json:"message_count"`
	SuggestionCount int                `json:"suggestion_count"`
}

// Summary builds the dashboard card for the conversation
func (c *AIConversation) Summary() ConversationSummary {
	return ConversationSummary{
		ID:              c.ID,
		Title:           c.Title,
		Date:            c.DateLabel,
		Preview:         c.Preview,
		Status:          c.Status,
		ProductID:       c.ProductID,
		MessageCount:    len(c.Messages),
		SuggestionCount: c.SuggestionCount(),
	}
}
