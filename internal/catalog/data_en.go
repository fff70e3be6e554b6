package catalog

import "github.com/hearttoheart/backend/internal/heart"

func loadEN() *Catalog {
	return &Catalog{
		Language: heart.LangEN,
		AgeGroups: []heart.AgeGroup{
			{ID: "toddler", Label: "1-3 Years", Range: "1-3 years", Description: "Early Development & Sensory"},
			{ID: "preschool", Label: "3-6 Years", Range: "3-6 years", Description: "Preschool & Socializing"},
			{ID: "school", Label: "6-12 Years", Range: "6-12 years", Description: "Focus & Emotions"},
			{ID: "teen", Label: "12-18 Years", Range: "12-18 years", Description: "Puberty & Identity"},
		},
		MilestonesByAgeGroup: map[string]string{
			"toddler":   "**1-3 Years:**\nMotor: Runs steadily, jumps with two feet.\nSpeech: Uses 3-4 word sentences.\nSocial: Imitates others, parallel play.",
			"preschool": "**3-6 Years:**\nCognitive: Understands cause/effect, fantasy vs reality.\nSocial: Cooperative play, sharing.\nEmotional: Verbalizes anger or sadness.",
			"school":    "**6-12 Years:**\nFocus: 20-40 min attention span.\nRules: Values fairness.\nPeers: Friends become more important than parents.",
			"teen":      "**12-18 Years:**\nThinking: Abstract logic.\nIndependence: Strong desire for autonomy.\nIdentity: \"Who am I?\" exploration.",
		},
		AssessmentsByAgeGroup: map[string][]heart.AssessmentDefinition{
			"toddler": {
				{
					ID:          "dev_milestone",
					Title:       "ASQ-3 Development Screening (Simplified)",
					Description: "Covers communication, motor skills, and problem solving.",
					Tags:        []string{"development", "motor", "speech"},
					Questions: []string{
						"Does the child imitate your movements?",
						"Can the child say at least 6 specific words?",
						"Can the child stack a tower of 3 blocks?",
						"Does the child walk steadily without falling often?",
						"Does the child smile at themselves in the mirror?",
					},
				},
				{
					ID:          "autism_mchat",
					Title:       "Early Social Communication (M-CHAT Ref)",
					Description: "Screening for early signs of autism spectrum traits.",
					Tags:        []string{"autism", "social"},
					Questions: []string{
						"If you point at something across the room, does the child look at it?",
						"Does the child play pretend/make-believe?",
						"Is the child interested in other children?",
						"Does the child point with one finger to ask for help?",
						"Does the child respond to their name immediately?",
					},
				},
				{
					ID:          "sensory",
					Title:       "Sensory Sensitivity",
					Description: "Evaluates reactions to sound, touch, and movement.",
					Tags:        []string{"sensory", "autism_risk"},
					Questions: []string{
						"Does the child show extreme fear of loud noises (vacuum, dryer)?",
						"Does the child refuse certain clothing textures or foods?",
						"Does the child seek excessive spinning or jumping?",
						"Does the child dislike being cuddled?",
						"Is eye contact brief or avoided?",
					},
				},
			},
			"preschool": {
				{
					ID:          "social_emotional",
					Title:       "Preschool Social-Emotional",
					Description: "Evaluates empathy and peer interaction.",
					Tags:        []string{"social", "emotional"},
					Questions: []string{
						"Can the child identify others' emotions (happy/sad)?",
						"Does the child take turns?",
						"Does the child recover quickly after losing a game?",
						"Does the child use words instead of hitting when angry?",
						"Can the child follow simple game rules?",
					},
				},
				{
					ID:          "adhd_early",
					Title:       "Early Focus & Hyperactivity",
					Description: "Distinguish active toddler behavior from potential ADHD.",
					Tags:        []string{"adhd", "impulse"},
					Questions: []string{
						"Does the child act as if driven by a motor?",
						"Does the child act impulsively in dangerous ways?",
						"Does the child shift from one activity to another very quickly?",
						"Does the child frequently interrupt others?",
						"Does the child have trouble sitting still for a story?",
					},
				},
				{
					ID:          "behavior_check",
					Title:       "Behavioral Screening",
					Description: "Screens for aggression, withdrawal, and attention.",
					Tags:        []string{"behavior", "attention"},
					Questions: []string{
						"Does the child have frequent, long tantrums?",
						"Can the child sit for a 5-minute story?",
						"Does the child hit, bite, or kick others?",
						"Is the child overly clingy in new places?",
						"Is the child constantly fidgeting?",
					},
				},
			},
			"school": {
				{
					ID:          "attention_snap",
					Title:       "Attention & Hyperactivity (SNAP-IV Ref)",
					Description: "Assessment for ADHD symptoms.",
					Tags:        []string{"adhd", "focus"},
					Questions: []string{
						"Makes careless mistakes in schoolwork?",
						"Has difficulty sustaining attention in tasks?",
						"Does not seem to listen when spoken to directly?",
						"Fails to finish schoolwork or chores?",
						"Often loses things needed for tasks?",
						"Fidgets with hands or feet?",
						"Runs about or climbs excessively?",
						"Interrupts or intrudes on others?",
					},
				},
				{
					ID:          "autism_social",
					Title:       "Social Interaction (ASSQ Ref)",
					Description: "Screening for high-functioning autism traits.",
					Tags:        []string{"autism", "social"},
					Questions: []string{
						"Speaks like a 'little professor'?",
						"Has intense focus on specific topics (e.g., trains)?",
						"Has trouble understanding jokes or sarcasm?",
						"Insists on specific routines?",
						"Socially clumsy or awkward?",
					},
				},
				{
					ID:          "conduct_sdq",
					Title:       "Strengths & Difficulties (SDQ Ref)",
					Description: "Evaluates conduct and peer relationships.",
					Tags:        []string{"conduct", "social"},
					Questions: []string{
						"Often has temper tantrums?",
						"Generally obedient?",
						"Often fights with other children?",
						"Often unhappy, down-hearted?",
						"Gets along better with adults than children?",
					},
				},
			},
			"teen": {
				{
					ID:          "depression_phq",
					Title:       "Adolescent Mood Screening (PHQ-9 Ref)",
					Description: "Screens for low mood and interest loss.",
					Tags:        []string{"depression", "mood"},
					Questions: []string{
						"Little interest or pleasure in doing things?",
						"Feeling down, depressed, or hopeless?",
						"Trouble falling or staying asleep?",
						"Feeling tired or having little energy?",
						"Poor appetite or overeating?",
						"Feeling bad about yourself?",
					},
				},
				{
					ID:          "emotional_psc",
					Title:       "Anxiety & Stress (GAD Ref)",
					Description: "Screens for generalized anxiety.",
					Tags:        []string{"anxiety", "stress"},
					Questions: []string{
						"Feeling nervous, anxious, or on edge?",
						"Not being able to stop worrying?",
						"Trouble relaxing?",
						"Becoming easily annoyed?",
						"Feeling physical pain due to stress?",
					},
				},
				{
					ID:          "autonomy",
					Title:       "Independence & Conflict",
					Description: "Evaluates family boundaries and communication.",
					Tags:        []string{"family", "conflict"},
					Questions: []string{
						"Opposes parents just for the sake of it?",
						"Hides whereabouts or online activity?",
						"Willing to ask parents for help with big problems?",
						"Feels parents don't understand their world?",
						"Mood swings are unpredictable?",
					},
				},
			},
		},
		SolutionCards: []heart.SolutionCard{
			{
				ID:          "attention",
				Title:       "Undue Attention",
				Subtitle:    "\"Look at me! Look at me!\"",
				Icon:        "👀",
				Description: "The child feels they only belong when they are being noticed. Manifests as clinging, clowning, or interrupting.",
				KidSkill:    "Skill to learn: **Expressing needs positively** and **Playing independently**.\nName it: \"The Star Power\" or \"Waiting Power\".",
				StrategiesParent: []string{
					"**Special Time**: 15 min daily undivided attention.",
					"**Redirect**: Give the child a \"Helper\" task.",
					"**Non-verbal**: Agree on a secret signal (wink) for \"I see you\".",
				},
				StrategiesTeacher: []string{
					"**Roles**: Give the student a specific classroom job.",
					"**Secret Signal**: Tap the desk gently as you pass by.",
					"**Ignore**: Tactically ignore minor misbehavior, praise the positive.",
				},
			},
			{
				ID:          "power",
				Title:       "Misguided Power",
				Subtitle:    "\"You can't make me!\"",
				Icon:        "⚔️",
				Description: "Child feels they only belong when they are the boss. Manifests as arguing, stubbornness, or defiance.",
				KidSkill:    "Skill to learn: **Cooperation** and **Negotiation**.\nName it: \"The Peace Maker\" or \"Cool Down Superpower\".",
				StrategiesParent: []string{
					"**Limited Choices**: \"Do you want to brush teeth first or wash face?\"",
					"**Withdraw**: \"I love you too much to argue.\" Walk away.",
					"**Routines**: Let the schedule be the boss, not you.",
				},
				StrategiesTeacher: []string{
					"**Choices**: \"You can do it now or during break.\"",
					"**Class Meetings**: Let students help set rules.",
					"**Private Talk**: Avoid public confrontation.",
				},
			},
			{
				ID:          "revenge",
				Title:       "Revenge",
				Subtitle:    "\"I hurt, so you should hurt too\"",
				Icon:        "💔",
				Description: "Child feels hurt and wants to hurt back. Manifests as hurtful words, breaking things, or physical aggression.",
				KidSkill:    "Skill to learn: **Forgiveness** and **Expressing Feelings**.\nName it: \"Heart Healer\".",
				StrategiesParent: []string{
					"**Repair**: Deal with feelings first. \"That sounded hurtful, you must be hurting.\"",
					"**Apologize**: If you messed up, say sorry.",
					"**Listen**: Don't defend, just listen.",
				},
				StrategiesTeacher: []string{
					"**Connection**: Build a 1-on-1 relationship outside of conflict.",
					"**Avoid Punishment**: Punishment usually fuels the revenge cycle.",
					"**Spotlight Strength**: Publicly acknowledge a talent.",
				},
			},
			{
				ID:          "withdrawal",
				Title:       "Assumed Inadequacy",
				Subtitle:    "\"I can't, leave me alone\"",
				Icon:        "🐢",
				Description: "Child feels useless and gives up. Manifests as passivity, giving up, or \"I don't know\".",
				KidSkill:    "Skill to learn: **Trying New Things** and **Asking for Help**.\nName it: \"The Brave Explorer\".",
				StrategiesParent: []string{
					"**Small Steps**: Break big tasks into tiny wins.",
					"**Focus on Process**: \"I saw you worked hard on that.\"",
					"**Stop Criticism**: Stop all criticism, look for any positive.",
				},
				StrategiesTeacher: []string{
					"**Scaffolding**: Make the task easier to ensure initial success.",
					"**Peer Helper**: Pair with a friendly, non-competitive peer.",
					"**Private Help**: Avoid public focus on their lack of skill.",
				},
			},
		},
	}
}
