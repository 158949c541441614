package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors     int
	LoginFailures   int
	PropertyCreates int
	OffersPlaced    int
	SweepRuns       int
	OffersExpired   int
	AgentActivities map[string]int
	ErrorPatterns   map[string]int
}

func main() {
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	stats := &LogStats{
		AgentActivities: make(map[string]int),
		ErrorPatterns:   make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("estate-error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("estate-info-%s.log", today)), stats)

	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		if strings.Contains(line, "Login failed") || strings.Contains(line, "Wrong password") {
			stats.LoginFailures++
			extractAgentActivity(line, stats)
		}

		extractErrorPattern(line, stats)
	}
}

var expiredRegex = regexp.MustCompile(`sweep expired (\d+) offers`)

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "created by agent") {
			stats.PropertyCreates++
		}
		if strings.Contains(line, "placed on property") {
			stats.OffersPlaced++
		}
		if m := expiredRegex.FindStringSubmatch(line); m != nil {
			stats.SweepRuns++
			var expired int
			fmt.Sscanf(m[1], "%d", &expired)
			stats.OffersExpired += expired
		}
	}
}

func extractAgentActivity(line string, stats *LogStats) {
	emailRegex := regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	if email := emailRegex.FindString(line); email != "" {
		stats.AgentActivities[email]++
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Listing Activity:")
	fmt.Printf("   Properties Created: %d\n", stats.PropertyCreates)
	fmt.Printf("   Offers Placed: %d\n", stats.OffersPlaced)

	fmt.Println("\n2. Expiry Sweeps:")
	fmt.Printf("   Sweep Runs: %d\n", stats.SweepRuns)
	fmt.Printf("   Offers Expired: %d\n", stats.OffersExpired)

	fmt.Println("\n3. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)
	fmt.Printf("   Failed Logins: %d\n", stats.LoginFailures)

	fmt.Println("\n4. Accounts With Failed Logins:")
	printTopAgents(stats.AgentActivities, 5)

	fmt.Println("\n5. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopAgents(agents map[string]int, limit int) {
	type agentActivity struct {
		email string
		count int
	}

	var activities []agentActivity
	for email, count := range agents {
		activities = append(activities, agentActivity{email, count})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].count > activities[j].count
	})

	for i, activity := range activities {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d failures\n", activity.email, activity.count)
	}
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		error string
		count int
	}

	var errorList []errorCount
	for err, count := range errors {
		errorList = append(errorList, errorCount{err, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		return errorList[i].count > errorList[j].count
	})

	for i, err := range errorList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", err.error, err.count)
	}
}
