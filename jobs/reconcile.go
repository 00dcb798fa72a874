package jobs

import (
	"log"
	"os"
	"strconv"
	"time"

	"pokernight/database"
	"pokernight/services"
)

// StartReconcileScheduler periodically reruns the full winnings recompute
// for every player. The request paths already keep totals in sync; the
// sweep exists to repair drift after manual database surgery. Disabled
// unless RECONCILE_INTERVAL_MINUTES is set to a positive number.
func StartReconcileScheduler() {
	minutes, err := strconv.Atoi(os.Getenv("RECONCILE_INTERVAL_MINUTES"))
	if err != nil || minutes <= 0 {
		return
	}

	ticker := time.NewTicker(time.Duration(minutes) * time.Minute)
	go func() {
		for {
			<-ticker.C
			recalculated, err := services.RecalculateAll(database.DB)
			if err != nil {
				log.Printf("❌ Winnings reconciliation failed: %v\n", err)
				continue
			}
			log.Printf("✅ Winnings reconciliation completed for %d players\n", recalculated)
		}
	}()
}
