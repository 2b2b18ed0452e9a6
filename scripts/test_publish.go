//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/route-weather-service/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	start := flag.String("from", "Oslo", "Start address")
	end := flag.String("to", "Bergen", "End address")
	via := flag.String("via", "", "Comma-separated waypoints")
	date := flag.String("date", time.Now().Format("2006-01-02"), "Travel date (YYYY-MM-DD)")
	clock := flag.String("time", "08:00", "Travel time (HH:MM)")
	travelType := flag.String("type", "departure", "departure or arrival")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.RoutePlanRequestedEvent{
		RequestID:    uuid.New(),
		StartAddress: *start,
		EndAddress:   *end,
		TravelDate:   *date,
		TravelTime:   *clock,
		TravelType:   domain.TravelType(*travelType),
	}
	if *via != "" {
		event.Waypoints = strings.Split(*via, ",")
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// запоминаем хвост done-стрима, чтобы читать только новые ответы
	lastID := "$"
	if msgs, err := client.XRevRangeN(ctx, domain.StreamRoutePlanDone, "+", "-", 1).Result(); err == nil && len(msgs) > 0 {
		lastID = msgs[0].ID
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamRoutePlan,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamRoutePlan)
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Route: %s -> %s\n", event.StartAddress, event.EndAddress)
	fmt.Printf("\nWaiting for response in %s...\n", domain.StreamRoutePlanDone)

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamRoutePlanDone, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil {
			continue
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID
				dataStr, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var done domain.RoutePlanDoneEvent
				if err := json.Unmarshal([]byte(dataStr), &done); err != nil {
					continue
				}
				if done.RequestID != event.RequestID {
					continue
				}

				pretty, _ := json.MarshalIndent(done, "", "  ")
				fmt.Printf("\nResponse received:\n%s\n", pretty)
				return
			}
		}
	}

	fmt.Println("Timeout waiting for response")
}
