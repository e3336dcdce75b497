package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AzharuddinMalik/MAD-ERP/models"
	"github.com/AzharuddinMalik/MAD-ERP/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection        = "users"
	CitiesCollection       = "cities"
	ProjectsCollection     = "projects"
	BOQCollection          = "billOfQuantities"
	MeasurementsCollection = "dailyMeasurements"
	LabourCollection       = "labour"
	AttendanceCollection   = "attendance"
	SiteUpdatesCollection  = "siteUpdates"
)

var (
	client *mongo.Client
	db     *mongo.Database
	ctx    = context.Background()
	mu     sync.RWMutex
)

// InitMongoDB connects to MongoDB and selects the working database.
func InitMongoDB(uri, dbName string) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var err error
	clientOptions := options.Client().ApplyURI(uri)
	client, err = mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping MongoDB: %w", err)
	}

	mu.Lock()
	db = client.Database(dbName)
	mu.Unlock()
	utils.Logger.Info().Str("database", dbName).Msg("connected to MongoDB")

	return nil
}

// CloseMongoDB disconnects the client.
func CloseMongoDB() {
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			utils.Logger.Error().Err(err).Msg("failed to disconnect MongoDB")
			return
		}
		utils.Logger.Info().Msg("disconnected from MongoDB")
	}
}

// Collection returns a handle to a named collection.
func Collection(name string) *mongo.Collection {
	mu.RLock()
	defer mu.RUnlock()
	return db.Collection(name)
}

// ExecuteDbOperation runs an operation with retries on transient errors.
func ExecuteDbOperation(operation func() (interface{}, error), retries int) (interface{}, error) {
	if retries <= 0 {
		retries = 3
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		result, err := operation()
		if err == nil {
			return result, nil
		}

		lastErr = err
		utils.LogError(err, map[string]interface{}{
			"attempt": i + 1,
			"retries": retries,
		}, "db operation failed")

		if !isRetryableError(err) {
			break
		}

		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}

	return nil, lastErr
}

// isRetryableError reports whether an error is worth retrying.
func isRetryableError(err error) bool {
	retryableCodes := map[int]bool{
		6:     true, // HostUnreachable
		7:     true, // HostNotFound
		89:    true, // NetworkTimeout
		91:    true, // ShutdownInProgress
		189:   true, // PrimarySteppedDown
		10107: true, // NotMaster
		13436: true, // NotMasterNoSlaveOk
		11600: true, // InterruptedAtShutdown
		11602: true, // InterruptedDueToReplStateChange
		10058: true, // ConnectionReset
	}

	if cmdErr, ok := err.(mongo.CommandError); ok {
		return retryableCodes[int(cmdErr.Code)]
	}

	return isNetworkError(err)
}

// isNetworkError checks for common transport failures.
func isNetworkError(err error) bool {
	errMsg := strings.ToLower(err.Error())
	networkErrors := []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"no reachable servers",
		"timeout",
		"context deadline exceeded",
		"server selection error",
	}

	for _, ne := range networkErrors {
		if strings.Contains(errMsg, ne) {
			return true
		}
	}

	return false
}

// InitializeCollections creates any missing collections.
func InitializeCollections() error {
	collections := []string{
		UsersCollection,
		CitiesCollection,
		ProjectsCollection,
		BOQCollection,
		MeasurementsCollection,
		LabourCollection,
		AttendanceCollection,
		SiteUpdatesCollection,
	}

	for _, collName := range collections {
		collExists, err := CollectionExists(collName)
		if err != nil {
			return fmt.Errorf("check collection: %w", err)
		}

		if !collExists {
			if err := db.CreateCollection(ctx, collName); err != nil {
				return fmt.Errorf("create collection: %w", err)
			}
			utils.Logger.Info().Str("collection", collName).Msg("created collection")
		}
	}

	return nil
}

// CollectionExists reports whether a collection is present.
func CollectionExists(collName string) (bool, error) {
	collections, err := db.ListCollectionNames(ctx, bson.M{"name": collName})
	if err != nil {
		return false, err
	}

	for _, name := range collections {
		if name == collName {
			return true, nil
		}
	}

	return false, nil
}

// InitializeAdminAccount seeds the default admin (admin/admin123) when no
// admin user exists yet.
func InitializeAdminAccount() error {
	usersCollection := db.Collection(UsersCollection)

	count, err := usersCollection.CountDocuments(ctx, bson.M{"role": models.UserRoleADMIN})
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}

	if count > 0 {
		utils.Logger.Info().Msg("admin account already exists, skipping seed")
		return nil
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	adminUser := models.User{
		Username:     "admin",
		PasswordHash: hash,
		FullName:     "Administrator",
		Role:         models.UserRoleADMIN,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	_, err = usersCollection.InsertOne(ctx, adminUser)
	if err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	utils.Logger.Info().Msg("seeded default admin account")
	return nil
}

// GetDatabaseStatus returns document counts per collection.
func GetDatabaseStatus() (map[string]interface{}, error) {
	collections := []string{
		UsersCollection,
		CitiesCollection,
		ProjectsCollection,
		BOQCollection,
		MeasurementsCollection,
		LabourCollection,
		AttendanceCollection,
		SiteUpdatesCollection,
	}

	result := make(map[string]interface{})

	for _, collName := range collections {
		coll := db.Collection(collName)
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			utils.Logger.Error().Err(err).Str("collection", collName).Msg("failed to count collection")
			result[collName] = map[string]interface{}{
				"count": 0,
				"error": err.Error(),
			}
			continue
		}
		utils.LogDbOperation("count", collName, bson.M{}, count)
		result[collName] = map[string]interface{}{"count": count}
	}

	return result, nil
}
