// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "criteria_spec", Type: field.TypeBytes},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
	}
	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"journal_entry", "task_completed", "habit_logged", "weekly_review_completed", "wheel_assessment_completed"}},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "local_date", Type: field.TypeString},
		{Name: "idempotency_key", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activity_events_users_events",
				Columns:    []*schema.Column{ActivityEventsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activityevent_user_id_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{ActivityEventsColumns[7], ActivityEventsColumns[6]},
			},
			{
				Name:    "activityevent_user_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[7], ActivityEventsColumns[4]},
			},
			{
				Name:    "activityevent_user_id_event_type_local_date",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[7], ActivityEventsColumns[2], ActivityEventsColumns[5]},
			},
		},
	}
	// FeatureUnlocksColumns holds the columns for the "feature_unlocks" table.
	FeatureUnlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "feature_id", Type: field.TypeString},
		{Name: "unlocked", Type: field.TypeBool, Default: true},
		{Name: "unlocked_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// FeatureUnlocksTable holds the schema information for the "feature_unlocks" table.
	FeatureUnlocksTable = &schema.Table{
		Name:       "feature_unlocks",
		Columns:    FeatureUnlocksColumns,
		PrimaryKey: []*schema.Column{FeatureUnlocksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feature_unlocks_users_feature_unlocks",
				Columns:    []*schema.Column{FeatureUnlocksColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "featureunlock_user_id_feature_id",
				Unique:  true,
				Columns: []*schema.Column{FeatureUnlocksColumns[5], FeatureUnlocksColumns[2]},
			},
		},
	}
	// HabitsColumns holds the columns for the "habits" table.
	HabitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "cue", Type: field.TypeString, Default: ""},
		{Name: "routine", Type: field.TypeString, Default: ""},
		{Name: "reward", Type: field.TypeString, Default: ""},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// HabitsTable holds the schema information for the "habits" table.
	HabitsTable = &schema.Table{
		Name:       "habits",
		Columns:    HabitsColumns,
		PrimaryKey: []*schema.Column{HabitsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "habits_users_habits",
				Columns:    []*schema.Column{HabitsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "habit_user_id_active",
				Unique:  false,
				Columns: []*schema.Column{HabitsColumns[8], HabitsColumns[7]},
			},
		},
	}
	// HabitStreaksColumns holds the columns for the "habit_streaks" table.
	HabitStreaksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "current_streak", Type: field.TypeInt, Default: 0},
		{Name: "longest_streak", Type: field.TypeInt, Default: 0},
		{Name: "last_completed_date", Type: field.TypeString, Default: ""},
		{Name: "habit_id", Type: field.TypeString, Unique: true},
	}
	// HabitStreaksTable holds the schema information for the "habit_streaks" table.
	HabitStreaksTable = &schema.Table{
		Name:       "habit_streaks",
		Columns:    HabitStreaksColumns,
		PrimaryKey: []*schema.Column{HabitStreaksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "habit_streaks_habits_streak",
				Columns:    []*schema.Column{HabitStreaksColumns[7]},
				RefColumns: []*schema.Column{HabitsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "habitstreak_user_id",
				Unique:  false,
				Columns: []*schema.Column{HabitStreaksColumns[3]},
			},
		},
	}
	// InsightsColumns holds the columns for the "insights" table.
	InsightsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "pattern_type", Type: field.TypeString},
		{Name: "signature", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "supporting_data", Type: field.TypeBytes, Nullable: true},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "viewed", "actioned"}, Default: "new"},
		{Name: "user_id", Type: field.TypeString},
	}
	// InsightsTable holds the schema information for the "insights" table.
	InsightsTable = &schema.Table{
		Name:       "insights",
		Columns:    InsightsColumns,
		PrimaryKey: []*schema.Column{InsightsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "insights_users_insights",
				Columns:    []*schema.Column{InsightsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "insight_user_id_pattern_type_signature",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[8], InsightsColumns[2], InsightsColumns[3]},
			},
			{
				Name:    "insight_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[8], InsightsColumns[7]},
			},
			{
				Name:    "insight_user_id_generated_at",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[8], InsightsColumns[6]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"FEATURE_UNLOCKED", "ACHIEVEMENT_AWARDED", "STREAK_MILESTONE", "INSIGHT_READY"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[9], NotificationsColumns[7]},
			},
			{
				Name:    "notification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[9], NotificationsColumns[1]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "pro_mode", Type: field.TypeBool, Default: false},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserAchievementsColumns holds the columns for the "user_achievements" table.
	UserAchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "achievement_id", Type: field.TypeString},
		{Name: "unlocked_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// UserAchievementsTable holds the schema information for the "user_achievements" table.
	UserAchievementsTable = &schema.Table{
		Name:       "user_achievements",
		Columns:    UserAchievementsColumns,
		PrimaryKey: []*schema.Column{UserAchievementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_achievements_users_awards",
				Columns:    []*schema.Column{UserAchievementsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "userachievement_user_id_achievement_id",
				Unique:  true,
				Columns: []*schema.Column{UserAchievementsColumns[4], UserAchievementsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		ActivityEventsTable,
		FeatureUnlocksTable,
		HabitsTable,
		HabitStreaksTable,
		InsightsTable,
		NotificationsTable,
		UsersTable,
		UserAchievementsTable,
	}
)

func init() {
	ActivityEventsTable.ForeignKeys[0].RefTable = UsersTable
	FeatureUnlocksTable.ForeignKeys[0].RefTable = UsersTable
	HabitsTable.ForeignKeys[0].RefTable = UsersTable
	HabitStreaksTable.ForeignKeys[0].RefTable = HabitsTable
	InsightsTable.ForeignKeys[0].RefTable = UsersTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	UserAchievementsTable.ForeignKeys[0].RefTable = UsersTable
}
