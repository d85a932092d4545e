package constant

// Category labels form a fixed taxonomy. LLM responses and the heuristic
// fallback both emit labels from this set; manual edits may use free text.
const (
	CategoryActionable               = "Actionable"
	CategoryGoals                    = "Goals"
	CategoryRelationshipStrategy     = "Relationship_Strategy"
	CategorySocial                   = "Social"
	CategoryProfessionalBackground   = "Professional_Background"
	CategoryFinancialSituation       = "Financial_Situation"
	CategoryWellbeing                = "Wellbeing"
	CategoryAvocation                = "Avocation"
	CategoryEnvironmentAndLifestyle  = "Environment_And_Lifestyle"
	CategoryPsychologyAndValues      = "Psychology_And_Values"
	CategoryCommunicationStyle       = "Communication_Style"
	CategoryChallengesAndDevelopment = "Challenges_And_Development"
	CategoryDeeperInsights           = "Deeper_Insights"
	CategoryAdminMatters             = "Admin_matters"
	CategoryOthers                   = "Others"
)

// CategoryDefinitions is embedded verbatim in extraction prompts.
const CategoryDefinitions = `
- Actionable: Immediate tasks, follow-ups, reminders, requests, or discussion topics requiring attention within days or weeks.
- Goals: Clearly defined aspirations and objectives across all life domains, including short-term targets (3-12 months), medium-term goals (1-5 years), and long-term visions (5+ years).
- Relationship_Strategy: Structured approaches to nurturing, deepening, or improving your relationship with specific tactics for connection and support.
- Social: Comprehensive mapping of their social ecosystem including family dynamics, friendship networks, romantic relationships, professional connections, community involvement.
- Professional_Background: Detailed career history and occupational profile including employment timeline, educational credentials, skill inventory, achievement record.
- Financial_Situation: Comprehensive portrait of their economic circumstances, money management approach, and financial outlook.
- Wellbeing: Holistic health status encompassing physical, mental, emotional, and spiritual dimensions.
- Avocation: Comprehensive inventory of non-professional interests, passions, and recreational activities.
- Environment_And_Lifestyle: Detailed portrait of their daily living context and routine patterns.
- Psychology_And_Values: In-depth profile of their mental frameworks, belief systems, and guiding principles.
- Communication_Style: Comprehensive analysis of their interpersonal communication patterns and preferences across all contexts.
- Challenges_And_Development: Nuanced exploration of their struggles, growth areas, and evolution across personal and professional domains.
- Deeper_Insights: Profound observations about their core essence, philosophical outlook, and unique qualities that transcend conventional categorization.
- Admin_matters: Administrative details including important dates, birthdays, anniversaries, and other key information to track.
- Others: Any other important information that doesn't fit into the categories above.
`

// NoHistorySentinel is returned by retrieval when the vector store has
// nothing relevant (or is unavailable). Prompt builders treat it as "omit
// the history section".
const NoHistorySentinel = "No relevant history found."
