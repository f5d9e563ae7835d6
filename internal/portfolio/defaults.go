package portfolio

// Default returns the built-in portfolio used when no file or database
// content is configured.
func Default() *Snapshot {
	return &Snapshot{
		Owner:    "Dev User",
		Headline: "Dev/DevOps Engineer",
		AboutMe: "Hi, I'm Dev User, a Dev/DevOps Engineer who enjoys building reliable, " +
			"automated platforms.\n\nI work across the stack, from writing services in Go " +
			"and TypeScript to running them on Kubernetes with GitOps, infrastructure as " +
			"code and solid observability. I care about fast feedback loops, boring " +
			"deployments and systems that heal themselves.",
		Skills: []string{
			"Docker", "Kubernetes", "Terraform", "AWS", "GCP", "GitHub Actions",
			"Argo CD", "Prometheus", "Grafana", "Go", "Python", "Linux",
		},
		SkillCatalog: []SkillCategory{
			{
				Name: "Cloud & Infrastructure",
				Skills: []Skill{
					{Name: "AWS", Level: "Advanced", Summary: "EKS, EC2 auto scaling, IAM, VPC design and cost tuning."},
					{Name: "Terraform", Level: "Advanced", Summary: "Reusable modules, remote state and policy checks in CI."},
					{Name: "GCP", Level: "Intermediate", Summary: "GKE, Cloud Run and Pub/Sub for event-driven workloads."},
				},
			},
			{
				Name: "Containers & Orchestration",
				Skills: []Skill{
					{Name: "Kubernetes", Level: "Advanced", Summary: "Cluster operations, Helm charts, HPA and network policies."},
					{Name: "Docker", Level: "Advanced", Summary: "Multi-stage builds, slim images and local dev environments."},
				},
			},
			{
				Name: "CI/CD & Automation",
				Skills: []Skill{
					{Name: "GitHub Actions", Level: "Advanced", Summary: "Reusable workflows, matrix builds and OIDC deploys to the cloud."},
					{Name: "Argo CD", Level: "Advanced", Summary: "GitOps delivery with app-of-apps and progressive rollouts."},
					{Name: "Ansible", Level: "Intermediate", Summary: "Configuration management for legacy VM fleets."},
				},
			},
			{
				Name: "Observability",
				Skills: []Skill{
					{Name: "Prometheus", Level: "Advanced", Summary: "Metrics, alert rules and SLO burn-rate alerts."},
					{Name: "Grafana", Level: "Advanced", Summary: "Dashboards as code and on-call runbooks."},
				},
			},
			{
				Name: "Programming",
				Skills: []Skill{
					{Name: "Go", Level: "Advanced", Summary: "CLIs, operators and HTTP services."},
					{Name: "Python", Level: "Intermediate", Summary: "Automation scripts and data tooling."},
				},
			},
		},
		Projects: []Project{
			{
				Name:         "auto-scaler-cloud",
				Title:        "Auto-Scaling Cloud Infrastructure",
				Technologies: "AWS, Terraform, Kubernetes, Prometheus",
				Description:  "Infrastructure that scales web workloads on demand using metrics-driven autoscaling and infrastructure as code.",
				Link:         "https://github.com",
			},
			{
				Name:         "gitops-pipeline",
				Title:        "Kubernetes GitOps Pipeline",
				Technologies: "Kubernetes, Argo CD, GitHub Actions, Helm",
				Description:  "A GitOps delivery pipeline that promotes container images across environments through pull requests.",
				Link:         "https://github.com",
			},
			{
				Name:         "observability-stack",
				Title:        "Unified Observability Stack",
				Technologies: "Prometheus, Grafana, Loki, OpenTelemetry",
				Description:  "Centralised metrics, logs and traces with SLO dashboards for a fleet of microservices.",
			},
		},
		Experience: []Experience{
			{
				Company:     "FutureTech Inc.",
				Role:        "Senior DevOps Engineer",
				Period:      "2022 - Present",
				Description: "Leads the platform team running Kubernetes across three regions; cut deployment time from hours to minutes with GitOps.",
			},
			{
				Company:     "CloudWorks Co.",
				Role:        "DevOps Engineer",
				Period:      "2019 - 2022",
				Description: "Migrated monolith workloads to containers and built the company's first CI/CD pipelines.",
			},
			{
				Company:     "Startup Labs",
				Role:        "Software Developer",
				Period:      "2017 - 2019",
				Description: "Built backend services and internal tooling in Go and Python.",
			},
		},
		Education: []Education{
			{
				Institution: "Bangkok Institute of Technology",
				Degree:      "B.Sc. in Computer Engineering",
				Period:      "2013 - 2017",
				Details:     "Focus on distributed systems and networking.",
			},
		},
		Contact: []Contact{
			{Name: "Email", Value: "hello@devterminal.dev", Link: "mailto:hello@devterminal.dev"},
			{Name: "GitHub", Value: "github.com/dev-user", Link: "https://github.com"},
			{Name: "LinkedIn", Value: "linkedin.com/in/dev-user", Link: "https://www.linkedin.com"},
		},
		Resume: Resume{
			Summary: "Dev/DevOps Engineer with 8+ years building cloud platforms, CI/CD pipelines and observability tooling.",
			URL:     "https://example.com/resume.pdf",
		},
	}
}
