package model

// StatusConfig is a user-defined task status. Value or Label written in a
// task line selects it.
type StatusConfig struct {
	ID          string `json:"id" mapstructure:"id"`
	Value       string `json:"value" mapstructure:"value"`
	Label       string `json:"label" mapstructure:"label"`
	IsCompleted bool   `json:"is_completed" mapstructure:"is_completed"`
}

// PriorityConfig is a user-defined task priority.
type PriorityConfig struct {
	ID     string `json:"id" mapstructure:"id"`
	Value  string `json:"value" mapstructure:"value"`
	Label  string `json:"label" mapstructure:"label"`
	Weight int    `json:"weight" mapstructure:"weight"` // higher is more important
}
