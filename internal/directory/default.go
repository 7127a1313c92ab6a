package directory

import "github.com/mtlprog/agenthub/internal/domain"

// Default returns the directory deployed with the hub.
// Changing an entry is a source edit; run `agenthub check` afterwards.
func Default() *Directory {
	return New(
		domain.Agent{
			ID:             "hpc-pulse",
			Name:           "HPC Pulse",
			Description:    "AI-powered conversational analytics for Azure HPC infrastructure. Query fleet health, NHIS metrics, and capacity across GB200/H100/MI300X clusters with natural language.",
			Icon:           domain.IconTrendingUp,
			DestinationURL: "https://aka.ms/hpc-pulse",
			ShortLinkLabel: "aka.ms/hpc-pulse",
			Theme:          domain.ColorTheme{From: domain.ThemeBlue, To: domain.ThemeCyan},
			BadgeLabel:     "Platform Health",
		},
		domain.Agent{
			ID:             "hpc-ai-insights",
			Name:           "HPC AI Insights",
			Description:    "Intelligent incident intelligence platform for supercomputing cluster deployments. Analyze ICM data, track cycle times, and detect patterns across GB200 buildouts worldwide.",
			Icon:           domain.IconBarChart,
			DestinationURL: "https://aka.ms/hpc-ai-insights",
			ShortLinkLabel: "aka.ms/hpc-ai-insights",
			Theme:          domain.ColorTheme{From: domain.ThemePurple, To: domain.ThemePink},
			BadgeLabel:     "ICM Analysis",
		},
		domain.Agent{
			ID:             "fairwater-bot",
			Name:           "Fairwater Teams Bot",
			Description:    "Grounded knowledge chatbot for Microsoft OpenAI Fairwater project. Get instant answers to questions about the project with contextual information and team expertise.",
			Icon:           domain.IconMessage,
			DestinationURL: "https://teams.microsoft.com/l/app/?source=embedded-builder&titleId=T_726f5869-fadb-132f-a9d4-44fe83d8ffa0",
			Theme:          domain.ColorTheme{From: domain.ThemeEmerald, To: domain.ThemeTeal},
			BadgeLabel:     "Teams Chat",
		},
	)
}
