// Command seed populates a SafeGate database with sample data for local
// development: two communities, a handful of users with auth accounts,
// library documents, a day of gate events, and dashboard notifications.
//
// Connection settings come from SAFEGATE_MONGO_URI and
// SAFEGATE_MONGO_DATABASE; everything else is literal in this file.
package main

import (
	"context"
	"os"
	"time"

	accesslogstore "github.com/safegate/console/internal/app/store/accesslogs"
	authstore "github.com/safegate/console/internal/app/store/authaccounts"
	librarystore "github.com/safegate/console/internal/app/store/library"
	notificationstore "github.com/safegate/console/internal/app/store/notifications"
	orgstore "github.com/safegate/console/internal/app/store/organizations"
	userstore "github.com/safegate/console/internal/app/store/users"
	"github.com/safegate/console/internal/app/system/orgutil"
	"github.com/safegate/console/internal/app/system/status"
	"github.com/safegate/console/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const seedPassword = "safegate123"

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	uri := os.Getenv("SAFEGATE_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("SAFEGATE_MONGO_DATABASE")
	if dbName == "" {
		dbName = "safegate"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	defer client.Disconnect(ctx)
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("mongo ping failed", zap.Error(err))
	}

	db := client.Database(dbName)
	if err := seed(ctx, db, logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	logger.Info("seed complete", zap.String("database", dbName))
}

func seed(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	orgs := orgstore.New(db)
	users := userstore.New(db)
	accounts := authstore.New(db)
	library := librarystore.New(db)
	events := accesslogstore.New(db)
	notes := notificationstore.New(db)

	vista, err := orgs.Create(ctx, models.Organization{
		Name:        "vista-hermosa",
		DisplayName: "Residencial Vista Hermosa",
		Address:     "Av. de los Pinos 120",
		City:        "Guadalajara",
		State:       "Jalisco",
		ZipCode:     "44630",
		Country:     "MX",
		ContactInfo: models.ContactInfo{
			Email: "admin@vistahermosa.mx",
			Phone: "+52 33 1234 5678",
		},
		Settings: models.OrganizationSettings{
			Theme: models.ThemeSettings{PrimaryColor: "#1e5e3b", SecondaryColor: "#f3f0e8"},
			Security: models.SecuritySettings{
				QRCodeExpiryHours:    24,
				RequirePhotoForGuest: true,
				MaxGuestsPerResident: 5,
				CommunityCode:        "VH-2024",
			},
			Notifications: models.NotificationSettings{EmailNotifications: true, PushNotifications: true},
		},
		CreatedBy: "seed",
	})
	if err != nil {
		return err
	}
	logger.Info("created organization", zap.String("id", vista.ID.Hex()), zap.String("name", vista.Name))

	robles, err := orgs.Create(ctx, models.Organization{
		Name:        "los-robles",
		DisplayName: "Privada Los Robles",
		Address:     "Calle Roble 45",
		City:        "Monterrey",
		State:       "Nuevo León",
		ZipCode:     "64920",
		Country:     "MX",
		ContactInfo: models.ContactInfo{
			Email: "contacto@losrobles.mx",
			Phone: "+52 81 9876 5432",
		},
		Settings: models.OrganizationSettings{
			Security: models.SecuritySettings{
				QRCodeExpiryHours:    12,
				MaxGuestsPerResident: 3,
				CommunityCode:        "LR-2024",
			},
		},
		CreatedBy: "seed",
	})
	if err != nil {
		return err
	}
	// One community starts inactive so the dashboard has something to grade.
	if err := orgs.UpdateStatus(ctx, robles.ID, status.Inactive); err != nil {
		return err
	}
	logger.Info("created organization", zap.String("id", robles.ID.Hex()), zap.String("name", robles.Name))

	seedUsers := []models.User{
		{Name: "María González", Email: "maria@vistahermosa.mx", Role: "admin", Status: status.Active, OrganizationID: &vista.ID},
		{Name: "Carlos Ramírez", Email: "carlos.guard@vistahermosa.mx", Role: "guard", Status: status.Active, OrganizationID: &vista.ID, BadgeNumber: "G-101", ShiftHours: "06:00-14:00"},
		{Name: "Lucía Fernández", Email: "lucia@vistahermosa.mx", Role: "member", Status: status.Active, OrganizationID: &vista.ID, HomeNumber: "12", HomeAddress: "Pinos 120, casa 12"},
		{Name: "Jorge Medina", Email: "jorge@losrobles.mx", Role: "member", Status: status.Active, OrganizationID: &robles.ID, HomeNumber: "4", HomeAddress: "Roble 45, casa 4"},
		{Name: "Ana Torres", Email: "ana@safegate.mx", Role: "super_admin", Status: status.Active},
	}

	var guard models.User
	for _, u := range seedUsers {
		uid, err := accounts.CreateAccount(ctx, u.Email, seedPassword, u.Name)
		if err != nil && err != authstore.ErrEmailInUse {
			return err
		}
		u.FirebaseUID = uid

		created, err := users.Create(ctx, u)
		if err != nil {
			return err
		}
		if created.Role == "guard" {
			guard = created
		}
		logger.Info("created user", zap.String("id", created.ID.Hex()), zap.String("role", created.Role))
	}

	if _, err := library.Create(ctx, models.LibraryDocument{
		Title:            "Reglamento interno 2024",
		Description:      "Reglamento general de convivencia y uso de áreas comunes.",
		Category:         "reglamentos",
		OrganizationID:   vista.ID,
		OrganizationName: vista.DisplayName,
		FileURL:          "/files/library/library/" + vista.ID.Hex() + "/seed_reglamento.pdf",
		FileName:         "reglamento.pdf",
		FileSize:         482133,
		FileType:         "application/pdf",
		StoragePath:      "library/" + vista.ID.Hex() + "/seed_reglamento.pdf",
	}); err != nil {
		return err
	}

	now := time.Now().UTC()
	for i := 0; i < 8; i++ {
		log := models.AccessLog{
			OrganizationID:     vista.ID,
			Timestamp:          now.Add(-time.Duration(i*3) * time.Hour),
			AccessGranted:      i%4 != 3,
			Location:           "Caseta principal",
			AccessType:         "entry",
			VerificationMethod: "qr_scan",
		}
		if !guard.ID.IsZero() {
			log.GuardID = &guard.ID
		}
		if _, err := events.Insert(ctx, log); err != nil {
			return err
		}
	}

	if _, err := notes.Insert(ctx, models.Notification{
		Type:           "info",
		Title:          "Bienvenido a SafeGate",
		Message:        "La consola está lista. Revisa las estadísticas del panel.",
		OrganizationID: &vista.ID,
	}); err != nil {
		return err
	}
	if _, err := notes.Insert(ctx, models.Notification{
		Type:           "warning",
		Title:          "Comunidad inactiva",
		Message:        "Privada Los Robles está marcada como inactiva.",
		OrganizationID: &robles.ID,
	}); err != nil {
		return err
	}

	// Seed writes bypass the console, so reconcile the counters once.
	return orgutil.RecountAll(ctx, db)
}
