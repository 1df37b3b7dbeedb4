// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Stoick643/elara/ent/achievement"
	"github.com/Stoick643/elara/ent/activityevent"
	"github.com/Stoick643/elara/ent/featureunlock"
	"github.com/Stoick643/elara/ent/habit"
	"github.com/Stoick643/elara/ent/habitstreak"
	"github.com/Stoick643/elara/ent/insight"
	"github.com/Stoick643/elara/ent/notification"
	"github.com/Stoick643/elara/ent/schema"
	"github.com/Stoick643/elara/ent/user"
	"github.com/Stoick643/elara/ent/userachievement"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementMixin := schema.Achievement{}.Mixin()
	achievementMixinFields0 := achievementMixin[0].Fields()
	_ = achievementMixinFields0
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescCreatedAt is the schema descriptor for created_at field.
	achievementDescCreatedAt := achievementMixinFields0[0].Descriptor()
	// achievement.DefaultCreatedAt holds the default value on creation for the created_at field.
	achievement.DefaultCreatedAt = achievementDescCreatedAt.Default.(func() time.Time)
	// achievementDescUpdatedAt is the schema descriptor for updated_at field.
	achievementDescUpdatedAt := achievementMixinFields0[1].Descriptor()
	// achievement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	achievement.DefaultUpdatedAt = achievementDescUpdatedAt.Default.(func() time.Time)
	// achievement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	achievement.UpdateDefaultUpdatedAt = achievementDescUpdatedAt.UpdateDefault.(func() time.Time)
	// achievementDescName is the schema descriptor for name field.
	achievementDescName := achievementFields[1].Descriptor()
	// achievement.NameValidator is a validator for the "name" field. It is called by the builders before save.
	achievement.NameValidator = achievementDescName.Validators[0].(func(string) error)
	// achievementDescDescription is the schema descriptor for description field.
	achievementDescDescription := achievementFields[2].Descriptor()
	// achievement.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	achievement.DescriptionValidator = achievementDescDescription.Validators[0].(func(string) error)
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescCreatedAt is the schema descriptor for created_at field.
	activityeventDescCreatedAt := activityeventMixinFields0[0].Descriptor()
	// activityevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	activityevent.DefaultCreatedAt = activityeventDescCreatedAt.Default.(func() time.Time)
	// activityeventDescUserID is the schema descriptor for user_id field.
	activityeventDescUserID := activityeventFields[1].Descriptor()
	// activityevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	activityevent.UserIDValidator = activityeventDescUserID.Validators[0].(func(string) error)
	// activityeventDescIdempotencyKey is the schema descriptor for idempotency_key field.
	activityeventDescIdempotencyKey := activityeventFields[6].Descriptor()
	// activityevent.IdempotencyKeyValidator is a validator for the "idempotency_key" field. It is called by the builders before save.
	activityevent.IdempotencyKeyValidator = activityeventDescIdempotencyKey.Validators[0].(func(string) error)
	featureunlockMixin := schema.FeatureUnlock{}.Mixin()
	featureunlockMixinFields0 := featureunlockMixin[0].Fields()
	_ = featureunlockMixinFields0
	featureunlockFields := schema.FeatureUnlock{}.Fields()
	_ = featureunlockFields
	// featureunlockDescCreatedAt is the schema descriptor for created_at field.
	featureunlockDescCreatedAt := featureunlockMixinFields0[0].Descriptor()
	// featureunlock.DefaultCreatedAt holds the default value on creation for the created_at field.
	featureunlock.DefaultCreatedAt = featureunlockDescCreatedAt.Default.(func() time.Time)
	// featureunlockDescUserID is the schema descriptor for user_id field.
	featureunlockDescUserID := featureunlockFields[1].Descriptor()
	// featureunlock.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	featureunlock.UserIDValidator = featureunlockDescUserID.Validators[0].(func(string) error)
	// featureunlockDescFeatureID is the schema descriptor for feature_id field.
	featureunlockDescFeatureID := featureunlockFields[2].Descriptor()
	// featureunlock.FeatureIDValidator is a validator for the "feature_id" field. It is called by the builders before save.
	featureunlock.FeatureIDValidator = featureunlockDescFeatureID.Validators[0].(func(string) error)
	// featureunlockDescUnlocked is the schema descriptor for unlocked field.
	featureunlockDescUnlocked := featureunlockFields[3].Descriptor()
	// featureunlock.DefaultUnlocked holds the default value on creation for the unlocked field.
	featureunlock.DefaultUnlocked = featureunlockDescUnlocked.Default.(bool)
	habitMixin := schema.Habit{}.Mixin()
	habitMixinFields0 := habitMixin[0].Fields()
	_ = habitMixinFields0
	habitFields := schema.Habit{}.Fields()
	_ = habitFields
	// habitDescCreatedAt is the schema descriptor for created_at field.
	habitDescCreatedAt := habitMixinFields0[0].Descriptor()
	// habit.DefaultCreatedAt holds the default value on creation for the created_at field.
	habit.DefaultCreatedAt = habitDescCreatedAt.Default.(func() time.Time)
	// habitDescUpdatedAt is the schema descriptor for updated_at field.
	habitDescUpdatedAt := habitMixinFields0[1].Descriptor()
	// habit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	habit.DefaultUpdatedAt = habitDescUpdatedAt.Default.(func() time.Time)
	// habit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	habit.UpdateDefaultUpdatedAt = habitDescUpdatedAt.UpdateDefault.(func() time.Time)
	// habitDescUserID is the schema descriptor for user_id field.
	habitDescUserID := habitFields[1].Descriptor()
	// habit.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	habit.UserIDValidator = habitDescUserID.Validators[0].(func(string) error)
	// habitDescName is the schema descriptor for name field.
	habitDescName := habitFields[2].Descriptor()
	// habit.NameValidator is a validator for the "name" field. It is called by the builders before save.
	habit.NameValidator = habitDescName.Validators[0].(func(string) error)
	// habitDescCue is the schema descriptor for cue field.
	habitDescCue := habitFields[3].Descriptor()
	// habit.DefaultCue holds the default value on creation for the cue field.
	habit.DefaultCue = habitDescCue.Default.(string)
	// habitDescRoutine is the schema descriptor for routine field.
	habitDescRoutine := habitFields[4].Descriptor()
	// habit.DefaultRoutine holds the default value on creation for the routine field.
	habit.DefaultRoutine = habitDescRoutine.Default.(string)
	// habitDescReward is the schema descriptor for reward field.
	habitDescReward := habitFields[5].Descriptor()
	// habit.DefaultReward holds the default value on creation for the reward field.
	habit.DefaultReward = habitDescReward.Default.(string)
	// habitDescActive is the schema descriptor for active field.
	habitDescActive := habitFields[6].Descriptor()
	// habit.DefaultActive holds the default value on creation for the active field.
	habit.DefaultActive = habitDescActive.Default.(bool)
	habitstreakMixin := schema.HabitStreak{}.Mixin()
	habitstreakMixinFields0 := habitstreakMixin[0].Fields()
	_ = habitstreakMixinFields0
	habitstreakFields := schema.HabitStreak{}.Fields()
	_ = habitstreakFields
	// habitstreakDescCreatedAt is the schema descriptor for created_at field.
	habitstreakDescCreatedAt := habitstreakMixinFields0[0].Descriptor()
	// habitstreak.DefaultCreatedAt holds the default value on creation for the created_at field.
	habitstreak.DefaultCreatedAt = habitstreakDescCreatedAt.Default.(func() time.Time)
	// habitstreakDescUpdatedAt is the schema descriptor for updated_at field.
	habitstreakDescUpdatedAt := habitstreakMixinFields0[1].Descriptor()
	// habitstreak.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	habitstreak.DefaultUpdatedAt = habitstreakDescUpdatedAt.Default.(func() time.Time)
	// habitstreak.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	habitstreak.UpdateDefaultUpdatedAt = habitstreakDescUpdatedAt.UpdateDefault.(func() time.Time)
	// habitstreakDescHabitID is the schema descriptor for habit_id field.
	habitstreakDescHabitID := habitstreakFields[1].Descriptor()
	// habitstreak.HabitIDValidator is a validator for the "habit_id" field. It is called by the builders before save.
	habitstreak.HabitIDValidator = habitstreakDescHabitID.Validators[0].(func(string) error)
	// habitstreakDescUserID is the schema descriptor for user_id field.
	habitstreakDescUserID := habitstreakFields[2].Descriptor()
	// habitstreak.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	habitstreak.UserIDValidator = habitstreakDescUserID.Validators[0].(func(string) error)
	// habitstreakDescCurrentStreak is the schema descriptor for current_streak field.
	habitstreakDescCurrentStreak := habitstreakFields[3].Descriptor()
	// habitstreak.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	habitstreak.DefaultCurrentStreak = habitstreakDescCurrentStreak.Default.(int)
	// habitstreak.CurrentStreakValidator is a validator for the "current_streak" field. It is called by the builders before save.
	habitstreak.CurrentStreakValidator = habitstreakDescCurrentStreak.Validators[0].(func(int) error)
	// habitstreakDescLongestStreak is the schema descriptor for longest_streak field.
	habitstreakDescLongestStreak := habitstreakFields[4].Descriptor()
	// habitstreak.DefaultLongestStreak holds the default value on creation for the longest_streak field.
	habitstreak.DefaultLongestStreak = habitstreakDescLongestStreak.Default.(int)
	// habitstreak.LongestStreakValidator is a validator for the "longest_streak" field. It is called by the builders before save.
	habitstreak.LongestStreakValidator = habitstreakDescLongestStreak.Validators[0].(func(int) error)
	// habitstreakDescLastCompletedDate is the schema descriptor for last_completed_date field.
	habitstreakDescLastCompletedDate := habitstreakFields[5].Descriptor()
	// habitstreak.DefaultLastCompletedDate holds the default value on creation for the last_completed_date field.
	habitstreak.DefaultLastCompletedDate = habitstreakDescLastCompletedDate.Default.(string)
	insightMixin := schema.Insight{}.Mixin()
	insightMixinFields0 := insightMixin[0].Fields()
	_ = insightMixinFields0
	insightFields := schema.Insight{}.Fields()
	_ = insightFields
	// insightDescCreatedAt is the schema descriptor for created_at field.
	insightDescCreatedAt := insightMixinFields0[0].Descriptor()
	// insight.DefaultCreatedAt holds the default value on creation for the created_at field.
	insight.DefaultCreatedAt = insightDescCreatedAt.Default.(func() time.Time)
	// insightDescUserID is the schema descriptor for user_id field.
	insightDescUserID := insightFields[1].Descriptor()
	// insight.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	insight.UserIDValidator = insightDescUserID.Validators[0].(func(string) error)
	// insightDescPatternType is the schema descriptor for pattern_type field.
	insightDescPatternType := insightFields[2].Descriptor()
	// insight.PatternTypeValidator is a validator for the "pattern_type" field. It is called by the builders before save.
	insight.PatternTypeValidator = insightDescPatternType.Validators[0].(func(string) error)
	// insightDescSignature is the schema descriptor for signature field.
	insightDescSignature := insightFields[3].Descriptor()
	// insight.SignatureValidator is a validator for the "signature" field. It is called by the builders before save.
	insight.SignatureValidator = insightDescSignature.Validators[0].(func(string) error)
	// insightDescDescription is the schema descriptor for description field.
	insightDescDescription := insightFields[4].Descriptor()
	// insight.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	insight.DescriptionValidator = insightDescDescription.Validators[0].(func(string) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUserID is the schema descriptor for user_id field.
	notificationDescUserID := notificationFields[1].Descriptor()
	// notification.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	notification.UserIDValidator = notificationDescUserID.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[4].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[7].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescTimezone is the schema descriptor for timezone field.
	userDescTimezone := userFields[2].Descriptor()
	// user.DefaultTimezone holds the default value on creation for the timezone field.
	user.DefaultTimezone = userDescTimezone.Default.(string)
	// userDescProMode is the schema descriptor for pro_mode field.
	userDescProMode := userFields[3].Descriptor()
	// user.DefaultProMode holds the default value on creation for the pro_mode field.
	user.DefaultProMode = userDescProMode.Default.(bool)
	userachievementMixin := schema.UserAchievement{}.Mixin()
	userachievementMixinFields0 := userachievementMixin[0].Fields()
	_ = userachievementMixinFields0
	userachievementFields := schema.UserAchievement{}.Fields()
	_ = userachievementFields
	// userachievementDescCreatedAt is the schema descriptor for created_at field.
	userachievementDescCreatedAt := userachievementMixinFields0[0].Descriptor()
	// userachievement.DefaultCreatedAt holds the default value on creation for the created_at field.
	userachievement.DefaultCreatedAt = userachievementDescCreatedAt.Default.(func() time.Time)
	// userachievementDescUserID is the schema descriptor for user_id field.
	userachievementDescUserID := userachievementFields[1].Descriptor()
	// userachievement.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userachievement.UserIDValidator = userachievementDescUserID.Validators[0].(func(string) error)
	// userachievementDescAchievementID is the schema descriptor for achievement_id field.
	userachievementDescAchievementID := userachievementFields[2].Descriptor()
	// userachievement.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	userachievement.AchievementIDValidator = userachievementDescAchievementID.Validators[0].(func(string) error)
}
