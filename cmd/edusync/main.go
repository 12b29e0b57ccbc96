package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/pranavsoni27/edusync-go/internal/assessment"
	"github.com/pranavsoni27/edusync-go/internal/auth"
	"github.com/pranavsoni27/edusync-go/internal/authoring"
	"github.com/pranavsoni27/edusync-go/internal/catalog"
	"github.com/pranavsoni27/edusync-go/internal/config"
	"github.com/pranavsoni27/edusync-go/internal/domain"
	"github.com/pranavsoni27/edusync-go/internal/enrollment"
	"github.com/pranavsoni27/edusync-go/internal/gateway"
	"github.com/pranavsoni27/edusync-go/internal/results"
)

func main() {
	// 1. Define and parse command-line flags
	flags := pflag.NewFlagSet("edusync", pflag.ExitOnError)
	configPath := flags.String("config", "", "Path to an optional YAML config file")
	flags.String("base-url", "", "Platform API base URL (overrides config and environment)")
	flags.Int("timeout-seconds", 0, "Request timeout in seconds")
	token := flags.String("token", "", "Bearer token for authenticated commands")
	verbose := flags.Bool("verbose", false, "Log request diagnostics")
	flags.Parse(os.Args[1:])

	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	gw := gateway.New(cfg.BaseURL, cfg.Timeout(), logger)
	ctx := context.Background()

	args := flags.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "login":
		if len(args) != 4 {
			log.Fatal("Usage: edusync login <email> <password> <role>")
		}
		identity, err := auth.NewClient(gw).Login(ctx, auth.Credentials{Email: args[1], Password: args[2], Role: args[3]})
		if err != nil {
			log.Fatalf("Login failed: %v", err)
		}
		fmt.Printf("Logged in as %s (%s)\nToken: %s\n", identity.Email, identity.Role, identity.Token)

	case "available":
		courses, err := catalog.NewClient(gw).AvailableCourses(ctx)
		if err != nil {
			log.Fatalf("Failed to list available courses: %v", err)
		}
		printCourses(courses)

	case "courses":
		courses, err := catalog.NewClient(gw).Courses(ctx, *token)
		if err != nil {
			log.Fatalf("Failed to list courses: %v", err)
		}
		printCourses(courses)

	case "contents":
		if len(args) != 2 {
			log.Fatal("Usage: edusync contents <courseID>")
		}
		items, err := catalog.NewClient(gw).CourseContents(ctx, args[1], *token)
		if err != nil {
			log.Fatalf("Failed to list course contents: %v", err)
		}
		for _, item := range items {
			fmt.Printf("%3d  %-10s %s  %s\n", item.Order, item.Type, item.Title, item.URL)
		}

	case "join":
		if len(args) != 2 {
			log.Fatal("Usage: edusync join <courseID>")
		}
		if _, err := enrollment.NewClient(gw).JoinCourse(ctx, args[1], *token); err != nil {
			log.Fatalf("Failed to join course: %v", err)
		}
		fmt.Println("Joined course", args[1])

	case "joined":
		if len(args) != 2 {
			log.Fatal("Usage: edusync joined <userID>")
		}
		courses, err := enrollment.NewClient(gw).JoinedCourses(ctx, args[1], *token)
		if err != nil {
			log.Fatalf("Failed to list joined courses: %v", err)
		}
		printCourses(courses)

	case "start":
		if len(args) != 2 {
			log.Fatal("Usage: edusync start <assessmentID>")
		}
		session, err := assessment.NewClient(gw).Start(ctx, args[1], *token)
		if err != nil {
			log.Fatalf("Failed to start assessment: %v", err)
		}
		fmt.Printf("Assessment %s: %d questions, %d minutes\n", session.AssessmentID, len(session.Questions), session.Duration)
		for i, q := range session.Questions {
			fmt.Printf("%d. %s\n", i+1, q.Text)
			for j, opt := range q.Options {
				fmt.Printf("   [%d] %s\n", j, opt)
			}
		}

	case "submit":
		// Answers are question=option pairs, in the order the questions
		// were presented.
		if len(args) < 3 {
			log.Fatal("Usage: edusync submit <assessmentID> <questionID>=<option> ...")
		}
		answers := assessment.NewAnswerSet()
		for _, pair := range args[2:] {
			questionID, selected, ok := strings.Cut(pair, "=")
			if !ok {
				log.Fatalf("Invalid answer %q, expected <questionID>=<option>", pair)
			}
			answers.Set(questionID, selected)
		}
		result, err := assessment.NewClient(gw).Submit(ctx, args[1], answers, *token)
		if err != nil {
			log.Fatalf("Failed to submit assessment: %v", err)
		}
		fmt.Printf("Submitted %d answers.\n", answers.Len())
		if score, ok := result["score"]; ok {
			fmt.Printf("Score: %s\n", score)
		}

	case "upload-content":
		if len(args) != 5 {
			log.Fatal("Usage: edusync upload-content <courseID> <title> <description> <url>")
		}
		content := authoring.ContentUpload{Title: args[2], Description: args[3], URL: args[4]}
		created, err := authoring.NewClient(gw).UploadContent(ctx, args[1], content, *token)
		if err != nil {
			log.Fatalf("Failed to upload content: %v", err)
		}
		if id, ok := created["contentId"]; ok {
			fmt.Printf("Uploaded content %s\n", id)
		} else {
			fmt.Println("Uploaded content")
		}

	case "performance":
		if len(args) != 2 {
			log.Fatal("Usage: edusync performance <courseID>")
		}
		payload, err := authoring.NewClient(gw).StudentPerformance(ctx, args[1], *token)
		if err != nil {
			log.Fatalf("Failed to fetch student performance: %v", err)
		}
		fmt.Println(string(payload))

	case "results":
		if len(args) != 2 {
			log.Fatal("Usage: edusync results <userID>")
		}
		list, err := results.NewClient(gw).UserResults(ctx, args[1], *token)
		if err != nil {
			log.Fatalf("Failed to list results: %v", err)
		}
		for _, r := range list {
			fmt.Printf("%s  assessment=%s  score=%.1f  %s\n", r.ID, r.AssessmentID, r.Score, r.AttemptDate.Format("2006-01-02 15:04"))
		}

	default:
		usage()
		os.Exit(2)
	}
}

func printCourses(courses []domain.Course) {
	for _, c := range courses {
		fmt.Printf("%s  %s\n", c.ID, c.Title)
		if c.Description != "" {
			fmt.Printf("    %s\n", c.Description)
		}
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: edusync [flags] <command> [args]

Commands:
  login <email> <password> <role>
  available
  courses
  contents <courseID>
  join <courseID>
  joined <userID>
  start <assessmentID>
  submit <assessmentID> <questionID>=<option> ...
  upload-content <courseID> <title> <description> <url>
  performance <courseID>
  results <userID>

Flags:
  --config         optional YAML config file
  --base-url       platform API base URL
  --timeout-seconds  request timeout
  --token          bearer token for authenticated commands
  --verbose        log request diagnostics`)
}
