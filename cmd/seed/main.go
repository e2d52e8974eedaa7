package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/oggyb/ballou-sms/internal/config"
	"github.com/oggyb/ballou-sms/internal/db/gormdb"
	domain "github.com/oggyb/ballou-sms/internal/domain/notification"
	zaplog "github.com/oggyb/ballou-sms/internal/logger/zap"
	notificationRepo "github.com/oggyb/ballou-sms/internal/repository/gorm/notification"
)

func main() {
	count := flag.Int("n", 50, "number of pending notifications to insert")
	to := flag.String("to", "", "recipient for every notification (random Swedish mobile numbers when empty)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	lg := zaplog.New(cfg.Log.Level, cfg.IsDevelopment()).Named("seed")
	defer lg.Sync()

	gormAdapter, err := gormdb.New(cfg.PostgresDSN())
	if err != nil {
		lg.Fatalw("[Seed] Failed to connect to database", err)
	}
	defer gormAdapter.Close()

	if err := gormAdapter.Migrate(&notificationRepo.NotificationModel{}); err != nil {
		lg.Fatalw("[Seed] AutoMigrate failed", err)
	}

	repo := notificationRepo.NewRepository(gormAdapter)

	for i := 0; i < *count; i++ {
		recipient := *to
		if recipient == "" {
			recipient = randomPhone()
		}

		// The domain constructor applies status PENDING, timestamps and validation.
		n, err := domain.NewNotification(recipient, randomContent(i+1))
		if err != nil {
			lg.Fatalw("[Seed] Invalid notification", err, "index", i+1)
		}

		if err := repo.Save(ctx, n); err != nil {
			lg.Fatalw("[Seed] Failed to save notification", err, "index", i+1)
		}
	}

	lg.Infow("[Seed] Done", "inserted", *count, "table", notificationRepo.NotificationModel{}.TableName())
}

// randomPhone generates a fake Swedish mobile number, e.g. 46701234567.
func randomPhone() string {
	return fmt.Sprintf("4670%07d", rand.Intn(10000000))
}

func randomContent(i int) string {
	now := time.Now().Format("15:04:05")
	return fmt.Sprintf("Seed notification #%d created at %s", i, now)
}
