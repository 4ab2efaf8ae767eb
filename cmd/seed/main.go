package main

import (
	"context"
	"log"

	"portfolio-api/internal/config"
	"portfolio-api/internal/db"
	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Siembra el contenido por defecto del sitio en tablas vacias. Es seguro
// ejecutarlo mas de una vez: cada bloque se salta si ya hay filas.
func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	sections := repository.NewPgSectionRepository(pool)
	skills := repository.NewPgSkillRepository(pool)
	technologies := repository.NewPgTechnologyRepository(pool)
	stats := repository.NewPgStatRepository(pool)
	socialLinks := repository.NewPgSocialLinkRepository(pool)

	if _, err := sections.GetSettings(ctx); err != nil {
		settings := domain.SiteSettings{
			SiteName:        "Portfolio",
			SiteTitle:       "Mark Developer | Full-Stack Developer Portfolio",
			SiteDescription: "A passionate full-stack developer crafting beautiful, performant web experiences.",
			SiteKeywords:    []string{"developer", "portfolio", "full-stack", "react", "next.js", "typescript"},
			AuthorName:      "Mark Developer",
			LogoText:        "Portfolio",
			FooterTagline:   "Building beautiful, performant web experiences one project at a time.",
			CopyrightName:   "Mark Developer",
		}
		if err := sections.UpsertSettings(ctx, settings); err != nil {
			logger.Fatal("seed settings", zap.Error(err))
		}
		logger.Info("site settings seeded")
	}

	if _, err := sections.GetHero(ctx); err != nil {
		hero := domain.HeroSection{
			Name:             "Mark Developer",
			StatusBadge:      "Available for work",
			StatusVisible:    true,
			Headline:         "Hi, I'm",
			Subheadline:      "A passionate full-stack developer crafting beautiful, performant web experiences. Turning complex problems into elegant solutions.",
			CTAPrimaryText:   "View My Work",
			CTASecondaryText: "Get In Touch",
		}
		if err := sections.UpsertHero(ctx, hero); err != nil {
			logger.Fatal("seed hero", zap.Error(err))
		}
		logger.Info("hero section seeded")
	}

	if _, err := sections.GetAbout(ctx); err != nil {
		about := domain.AboutSection{
			Title:       "About Me",
			Description: "I'm a full-stack developer with 5+ years of experience building web applications. I love creating products that make a difference and learning new technologies along the way.",
		}
		if err := sections.UpsertAbout(ctx, about); err != nil {
			logger.Fatal("seed about", zap.Error(err))
		}
		logger.Info("about section seeded")
	}

	if _, err := sections.GetContact(ctx); err != nil {
		contact := domain.ContactSection{
			Title:            "Get In Touch",
			Description:      "Have a project in mind or want to collaborate? I'd love to hear from you. Let's create something amazing together.",
			Email:            "hello@example.com",
			Location:         "San Francisco, CA",
			ResponseTimeText: "I typically respond within 24 hours. For urgent matters, don't hesitate to reach out directly via email.",
		}
		if err := sections.UpsertContact(ctx, contact); err != nil {
			logger.Fatal("seed contact", zap.Error(err))
		}
		logger.Info("contact section seeded")
	}

	if n, err := skills.Count(ctx); err != nil {
		logger.Fatal("count skills", zap.Error(err))
	} else if n == 0 {
		defaults := []domain.Skill{
			{Title: "Full-Stack Development", Description: "Building end-to-end solutions with React, Next.js, Node.js, and modern databases.", Icon: "Code2", Order: 1},
			{Title: "UI/UX Design", Description: "Creating intuitive, beautiful interfaces that users love to interact with.", Icon: "Palette", Order: 2},
			{Title: "Performance", Description: "Optimizing applications for speed, accessibility, and search engine visibility.", Icon: "Rocket", Order: 3},
			{Title: "Collaboration", Description: "Working effectively in teams, communicating clearly, and delivering on time.", Icon: "Users", Order: 4},
		}
		for _, skill := range defaults {
			skill.ID = uuid.NewString()
			if err := skills.Create(ctx, skill); err != nil {
				logger.Fatal("seed skill", zap.Error(err))
			}
		}
		logger.Info("skills seeded")
	}

	if n, err := technologies.Count(ctx); err != nil {
		logger.Fatal("count technologies", zap.Error(err))
	} else if n == 0 {
		names := []string{
			"TypeScript", "React", "Next.js", "Node.js", "PostgreSQL", "MongoDB",
			"Convex", "Tailwind CSS", "Framer Motion", "Docker", "AWS", "Git",
		}
		for i, name := range names {
			tech := domain.Technology{ID: uuid.NewString(), Name: name, Order: i + 1}
			if err := technologies.Create(ctx, tech); err != nil {
				logger.Fatal("seed technology", zap.Error(err))
			}
		}
		logger.Info("technologies seeded")
	}

	if n, err := stats.Count(ctx); err != nil {
		logger.Fatal("count stats", zap.Error(err))
	} else if n == 0 {
		defaults := []domain.Stat{
			{Value: "5+", Label: "Years Experience", Order: 1},
			{Value: "50+", Label: "Projects Completed", Order: 2},
			{Value: "30+", Label: "Happy Clients", Order: 3},
			{Value: "100%", Label: "Satisfaction Rate", Order: 4},
		}
		for _, stat := range defaults {
			stat.ID = uuid.NewString()
			if err := stats.Create(ctx, stat); err != nil {
				logger.Fatal("seed stat", zap.Error(err))
			}
		}
		logger.Info("stats seeded")
	}

	if n, err := socialLinks.Count(ctx); err != nil {
		logger.Fatal("count social links", zap.Error(err))
	} else if n == 0 {
		defaults := []domain.SocialLink{
			{Platform: "GitHub", URL: "https://github.com", Icon: "Github", Order: 1, Visible: true},
			{Platform: "LinkedIn", URL: "https://linkedin.com", Icon: "Linkedin", Order: 2, Visible: true},
			{Platform: "Email", URL: "mailto:hello@example.com", Icon: "Mail", Order: 3, Visible: true},
		}
		for _, link := range defaults {
			link.ID = uuid.NewString()
			if err := socialLinks.Create(ctx, link); err != nil {
				logger.Fatal("seed social link", zap.Error(err))
			}
		}
		logger.Info("social links seeded")
	}

	logger.Info("seed complete")
}
