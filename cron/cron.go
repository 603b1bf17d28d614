package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/services"
)

// StartCronJobs initializes and starts the scheduler that sweeps stale
// appointment requests.
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Every 10 minutes, cancel pending requests whose date has passed
	_, err := c.AddFunc("*/10 * * * *", expireStaleRequests)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for request expiry")
}

func expireStaleRequests() {
	booking := services.NewBookingService(services.NewBookingRepo(db.DB))
	expired, err := booking.ExpireStaleRequests(time.Now())
	if err != nil {
		log.Printf("Error expiring stale requests: %v", err)
		return
	}
	if expired > 0 {
		log.Printf("Expired %d stale appointment requests", expired)
	}
}
