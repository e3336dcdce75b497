package service

import (
	"context"
	"time"

	"github.com/AzharuddinMalik/MAD-ERP/repository"
	"github.com/AzharuddinMalik/MAD-ERP/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleDailyTaskAt runs task every day at the given local time.
// The first run waits until the next occurrence.
func ScheduleDailyTaskAt(hour, min, sec int, task func()) {
	go func() {
		for {
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, sec, 0, now.Location())
			if !next.After(now) {
				next = next.AddDate(0, 0, 1)
			}

			utils.Logger.Info().
				Time("nextRun", next).
				Msg("daily task scheduled")

			time.Sleep(next.Sub(now))
			task()
		}
	}()
}

// ReconcileLabourCounts rewrites each project's labourCount from its
// active roster. Supervisor-reported counts drift during the day; the
// roster is the source of truth overnight.
func ReconcileLabourCounts() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	projectCollection := repository.Collection(repository.ProjectsCollection)
	labourCollection := repository.Collection(repository.LabourCollection)

	cursor, err := projectCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.Logger.Error().Err(err).Msg("labour reconciliation: failed to list projects")
		return
	}

	var projects []struct {
		ID          primitive.ObjectID `bson:"_id"`
		LabourCount int                `bson:"labourCount"`
	}
	if err = cursor.All(ctx, &projects); err != nil {
		utils.Logger.Error().Err(err).Msg("labour reconciliation: failed to decode projects")
		return
	}

	updated := 0
	for _, p := range projects {
		count, err := labourCollection.CountDocuments(ctx, bson.M{
			"projectId": p.ID,
			"isActive":  true,
		})
		if err != nil {
			utils.Logger.Error().Err(err).Str("project", p.ID.Hex()).Msg("labour reconciliation: count failed")
			continue
		}
		if int(count) == p.LabourCount {
			continue
		}

		projectID := p.ID
		_, err = repository.ExecuteDbOperation(func() (interface{}, error) {
			return projectCollection.UpdateOne(ctx,
				bson.M{"_id": projectID},
				bson.M{"$set": bson.M{"labourCount": int(count)}})
		}, 3)
		if err != nil {
			utils.Logger.Error().Err(err).Str("project", projectID.Hex()).Msg("labour reconciliation: update failed")
			continue
		}
		updated++
	}

	utils.Logger.Info().
		Int("projects", len(projects)).
		Int("updated", updated).
		Msg("labour counts reconciled")
}
