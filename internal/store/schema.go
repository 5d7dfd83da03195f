package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the repositories.
const (
	decksTable          = "decks"
	cardsTable          = "cards"
	progressTable       = "card_progress"
	settingsTable       = "learner_settings"
	reviewEventsTable   = "review_events"
	sessionEventsTable  = "session_events"
	gemEventsTable      = "gem_events"
	globalSequenceTable = "global_sequence"
)

var (
	// DecksColumns holds the columns for the "decks" table.
	DecksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DecksTable holds the schema information for the "decks" table.
	DecksTable = &schema.Table{
		Name:       decksTable,
		Columns:    DecksColumns,
		PrimaryKey: []*schema.Column{DecksColumns[0]},
		Indexes: []*schema.Index{
			{Name: "deck_name", Unique: true, Columns: []*schema.Column{DecksColumns[1]}},
		},
	}

	// CardsColumns holds the columns for the "cards" table.
	CardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "deck_id", Type: field.TypeString},
		{Name: "term", Type: field.TypeString},
		{Name: "definition", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CardsTable holds the schema information for the "cards" table.
	CardsTable = &schema.Table{
		Name:       cardsTable,
		Columns:    CardsColumns,
		PrimaryKey: []*schema.Column{CardsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cards_decks_cards",
				Columns:    []*schema.Column{CardsColumns[1]},
				RefColumns: []*schema.Column{DecksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "card_deck_id_position", Columns: []*schema.Column{CardsColumns[1], CardsColumns[4]}},
		},
	}

	// CardProgressColumns holds the columns for the "card_progress" table.
	CardProgressColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "card_id", Type: field.TypeString},
		{Name: "deck_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString, Default: "learn"},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "repetitions", Type: field.TypeInt},
		{Name: "interval_minutes", Type: field.TypeFloat64},
		{Name: "last_grade", Type: field.TypeInt, Nullable: true},
		{Name: "last_response_ms", Type: field.TypeFloat64, Nullable: true},
		{Name: "response_ms_avg", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence_avg", Type: field.TypeFloat64, Default: 0},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CardProgressTable holds the schema information for the "card_progress" table.
	CardProgressTable = &schema.Table{
		Name:       progressTable,
		Columns:    CardProgressColumns,
		PrimaryKey: []*schema.Column{CardProgressColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "card_progress_cards_progress",
				Columns:    []*schema.Column{CardProgressColumns[2]},
				RefColumns: []*schema.Column{CardsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "card_progress_decks_progress",
				Columns:    []*schema.Column{CardProgressColumns[3]},
				RefColumns: []*schema.Column{DecksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "cardprogress_learner_id_card_id", Unique: true, Columns: []*schema.Column{CardProgressColumns[1], CardProgressColumns[2]}},
			{Name: "cardprogress_learner_id_deck_id", Columns: []*schema.Column{CardProgressColumns[1], CardProgressColumns[3]}},
		},
	}

	// LearnerSettingsColumns holds the columns for the "learner_settings" table.
	LearnerSettingsColumns = []*schema.Column{
		{Name: "learner_id", Type: field.TypeString},
		{Name: "daily_new_limit", Type: field.TypeInt, Default: 20},
		{Name: "review_session_limit", Type: field.TypeInt, Default: 100},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnerSettingsTable holds the schema information for the "learner_settings" table.
	LearnerSettingsTable = &schema.Table{
		Name:       settingsTable,
		Columns:    LearnerSettingsColumns,
		PrimaryKey: []*schema.Column{LearnerSettingsColumns[0]},
	}

	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "card_id", Type: field.TypeString},
		{Name: "deck_id", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "first_review", Type: field.TypeBool, Default: false},
		{Name: "response_ms", Type: field.TypeFloat64, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "repetitions", Type: field.TypeInt},
		{Name: "interval_minutes", Type: field.TypeFloat64},
		{Name: "due_at", Type: field.TypeTime},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       reviewEventsTable,
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "reviewevent_timestamp", Columns: []*schema.Column{ReviewEventsColumns[2]}},
			{Name: "reviewevent_learner_id_first_review", Columns: []*schema.Column{ReviewEventsColumns[4], ReviewEventsColumns[9]}},
		},
	}

	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "deck_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "cards_planned", Type: field.TypeInt, Default: 0},
		{Name: "new_cards", Type: field.TypeInt, Default: 0},
		{Name: "cards_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "best_streak", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       sessionEventsTable,
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "sessionevent_session_id", Columns: []*schema.Column{SessionEventsColumns[3]}},
			{Name: "sessionevent_learner_id_action", Columns: []*schema.Column{SessionEventsColumns[4], SessionEventsColumns[6]}},
		},
	}

	// GemEventsColumns holds the columns for the "gem_events" table.
	GemEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "gem_type", Type: field.TypeString},
		{Name: "rarity", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Default: ""},
	}
	// GemEventsTable holds the schema information for the "gem_events" table.
	GemEventsTable = &schema.Table{
		Name:       gemEventsTable,
		Columns:    GemEventsColumns,
		PrimaryKey: []*schema.Column{GemEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "gemevent_learner_id", Columns: []*schema.Column{GemEventsColumns[3]}},
			{Name: "gemevent_session_id", Columns: []*schema.Column{GemEventsColumns[4]}},
		},
	}

	// GlobalSequenceColumns holds the columns for the "global_sequence" table.
	GlobalSequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	// GlobalSequenceTable holds the single-row counter shared by all events.
	GlobalSequenceTable = &schema.Table{
		Name:       globalSequenceTable,
		Columns:    GlobalSequenceColumns,
		PrimaryKey: []*schema.Column{GlobalSequenceColumns[0]},
	}

	// Tables holds all the tables in the schema, in creation order.
	Tables = []*schema.Table{
		DecksTable,
		CardsTable,
		CardProgressTable,
		LearnerSettingsTable,
		ReviewEventsTable,
		SessionEventsTable,
		GemEventsTable,
		GlobalSequenceTable,
	}
)

func init() {
	CardsTable.ForeignKeys[0].RefTable = DecksTable
	CardProgressTable.ForeignKeys[0].RefTable = CardsTable
	CardProgressTable.ForeignKeys[1].RefTable = DecksTable
}
