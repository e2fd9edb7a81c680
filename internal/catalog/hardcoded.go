package catalog

import (
	"github.com/ascendlabs/coach-roadmap-service/types"
)

// sprintPlan is the 1-3 month catalog: three aggressive phases over 90 days.
func sprintPlan() types.RoadmapPlan {
	const tl = Timeline1To3Months
	return types.RoadmapPlan{
		Name:      "90-Day Career Sprint",
		TotalDays: 90,
		Strategy:  types.StrategySprint,
		Phases: []types.Phase{
			{
				Number:      1,
				Title:       "Foundation & Focus",
				WeeksLabel:  "Weeks 1-4",
				Description: "Get brutally clear on where you are going and what you are selling. A short timeline means no time for exploration for its own sake.",
				Objectives: []string{
					"Define one specific target role and write it down",
					"Audit your transferable skills against live job postings",
					"Rebuild your resume and LinkedIn around the target role",
				},
				Tasks: tasks(tl, 1,
					"Write a one-paragraph positioning statement for your target role",
					"Collect 10 job postings for the role and highlight repeated requirements",
					"List your top 5 transferable skills with one proof point each",
					"Update your resume headline and summary to match the target role",
					"Refresh your LinkedIn headline, photo and about section",
				),
				MotivationalMessage: "Ninety days is enough when every week counts. Clarity now saves you a month later.",
			},
			{
				Number:      2,
				Title:       "Build & Apply",
				WeeksLabel:  "Weeks 5-8",
				Description: "Close the most visible skill gaps while applications go out in volume. Momentum beats polish at this stage.",
				Objectives: []string{
					"Close your single biggest skill gap with a focused crash project",
					"Apply to at least 10 roles per week with tailored materials",
					"Reactivate your professional network with specific asks",
				},
				Tasks: tasks(tl, 2,
					"Pick one skill gap and finish a small project that demonstrates it",
					"Set up a job application tracker and log every application",
					"Send 15 reconnection messages to former colleagues",
					"Ask 3 contacts for a referral to an open role",
					"Do one mock interview with a friend or mentor",
				),
				MotivationalMessage: "Halfway through. Every application is a repetition, and repetitions are how you get sharp.",
			},
			{
				Number:      3,
				Title:       "Interview & Land",
				WeeksLabel:  "Weeks 9-13",
				Description: "Convert interviews into offers. Preparation, follow-up and negotiation discipline carry this phase.",
				Objectives: []string{
					"Prepare a story bank covering the 10 most common interview questions",
					"Follow up on every application and interview within 48 hours",
					"Research market salary data before any offer conversation",
				},
				Tasks: tasks(tl, 3,
					"Write STAR stories for your 6 strongest accomplishments",
					"Rehearse your answers out loud twice per week",
					"Send a thank-you note after every interview",
					"Build a salary range from at least 3 data sources",
					"Practice stating your salary expectation without hedging",
				),
				MotivationalMessage: "You did the work. Walk into every interview knowing the preparation is already done.",
			},
		},
	}
}

// balancedPlan is the 3-6 month catalog: six phases over 180 days. This is
// also the fallback for unmapped timeline values.
func balancedPlan() types.RoadmapPlan {
	const tl = Timeline3To6Months
	return types.RoadmapPlan{
		Name:      "180-Day Career Transition Roadmap",
		TotalDays: 180,
		Strategy:  types.StrategyBalanced,
		Phases: []types.Phase{
			{
				Number:      1,
				Title:       "Self-Assessment & Direction",
				WeeksLabel:  "Weeks 1-4",
				Description: "Take stock honestly before moving. Six months gives you room to choose a direction instead of grabbing the first exit.",
				Objectives: []string{
					"Inventory your transferable skills and rank them by market demand",
					"Shortlist 2-3 target roles and validate them against your strengths",
					"Map the hiring landscape in your industry",
				},
				Tasks: tasks(tl, 1,
					"Complete a written skills inventory with examples for each skill",
					"Interview yourself: write down what you want more of and less of",
					"Research 3 target roles and note required qualifications",
					"Talk to 2 people currently doing each target role",
				),
				MotivationalMessage: "A transition built on self-knowledge does not wobble. Take the time to dig.",
			},
			{
				Number:      2,
				Title:       "Skill Gap Analysis",
				WeeksLabel:  "Weeks 5-8",
				Description: "Compare where you are with where the target role needs you to be, and build a learning plan that fits your life.",
				Objectives: []string{
					"Produce a gap list comparing your transferable skills to role requirements",
					"Choose learning resources for your top 2 gaps",
					"Set a weekly learning schedule you can sustain",
				},
				Tasks: tasks(tl, 2,
					"Build a two-column gap analysis from 15 job postings",
					"Pick one course or book per gap and schedule it",
					"Block recurring learning time in your calendar",
					"Find an accountability partner for your learning plan",
				),
				MotivationalMessage: "Gaps are just a to-do list. Name them and they stop being scary.",
			},
			{
				Number:      3,
				Title:       "Skill Building",
				WeeksLabel:  "Weeks 9-13",
				Description: "Deep work on the capabilities that will carry your candidacy. Output matters more than certificates.",
				Objectives: []string{
					"Complete structured learning for your two biggest gaps",
					"Build one portfolio piece that proves the new capability",
					"Document your progress publicly once a week",
				},
				Tasks: tasks(tl, 3,
					"Finish the first course on your learning plan",
					"Ship a small project applying what you learned",
					"Write a short weekly progress post on LinkedIn",
					"Collect feedback on your project from 2 practitioners",
				),
				MotivationalMessage: "Skill compounds quietly. Week nine you feels very different from week one you.",
			},
			{
				Number:      4,
				Title:       "Brand & Network",
				WeeksLabel:  "Weeks 14-17",
				Description: "Make the market aware of you before you need it. Warm pipelines convert far better than cold applications.",
				Objectives: []string{
					"Rewrite your resume and LinkedIn around the new direction",
					"Grow your professional network with 20 relevant new contacts",
					"Secure 5 informational interviews in your industry",
				},
				Tasks: tasks(tl, 4,
					"Rewrite your resume with your new portfolio piece front and center",
					"Send 5 thoughtful connection requests per week",
					"Book informational interviews with people in your target role",
					"Prepare 5 questions that make each conversation useful",
				),
				MotivationalMessage: "People hire people they have already met. Go get met.",
			},
			{
				Number:      5,
				Title:       "Active Search",
				WeeksLabel:  "Weeks 18-22",
				Description: "Structured, high-volume search with tailored applications. Treat it like a part-time job with metrics.",
				Objectives: []string{
					"Apply to 8-10 well-matched roles per week",
					"Convert network contacts into referrals",
					"Track every application and follow up on schedule",
				},
				Tasks: tasks(tl, 5,
					"Tailor your resume keywords for every application",
					"Ask one contact per week for an internal referral",
					"Follow up on open applications every 7 days",
					"Review your funnel weekly and adjust targeting",
				),
				MotivationalMessage: "Search is a numbers game played with quality pieces. You have both now.",
			},
			{
				Number:      6,
				Title:       "Interview & Negotiate",
				WeeksLabel:  "Weeks 23-26",
				Description: "Close well. Interviews reward preparation and negotiation rewards patience.",
				Objectives: []string{
					"Rehearse role-specific interview answers weekly",
					"Benchmark compensation for the role and region",
					"Negotiate every offer before accepting",
				},
				Tasks: tasks(tl, 6,
					"Run 2 full mock interviews with feedback",
					"Prepare a written salary range with data sources",
					"Draft your negotiation talking points in advance",
					"Send thank-you notes within 24 hours of each interview",
				),
				MotivationalMessage: "Twenty-six weeks of deliberate work led here. Finish like you started: prepared.",
			},
		},
	}
}

// sustainablePlan is the 6-12 month catalog: eight phases over 365 days.
func sustainablePlan() types.RoadmapPlan {
	const tl = Timeline6To12Months
	return types.RoadmapPlan{
		Name:      "365-Day Career Evolution Plan",
		TotalDays: 365,
		Strategy:  types.StrategySustainable,
		Phases: []types.Phase{
			{
				Number:      1,
				Title:       "Deep Self-Discovery",
				WeeksLabel:  "Weeks 1-6",
				Description: "With a year of runway, start from values and energy, not just skills. The goal is a direction you will still want in month ten.",
				Objectives: []string{
					"Clarify your core work values and non-negotiables",
					"Inventory your transferable skills without time pressure",
					"Explore 4-5 possible directions before narrowing",
				},
				Tasks: tasks(tl, 1,
					"Keep a two-week energy journal of what drains and fuels you",
					"Write your ideal workday one year from now",
					"List every skill you would enjoy using daily",
					"Research 5 career directions that fit your values",
				),
				MotivationalMessage: "Slow is smooth and smooth is fast. You are building something durable.",
			},
			{
				Number:      2,
				Title:       "Market Exploration",
				WeeksLabel:  "Weeks 7-12",
				Description: "Test your shortlisted directions against reality through conversations, not job boards.",
				Objectives: []string{
					"Hold 10 exploratory conversations across your shortlisted directions",
					"Understand compensation and growth prospects in your industry",
					"Narrow to one primary direction with a written rationale",
				},
				Tasks: tasks(tl, 2,
					"Book 2 informational interviews per week",
					"Summarize each conversation in a decision journal",
					"Compare growth outlook for each direction",
					"Write one page on why your chosen direction wins",
				),
				MotivationalMessage: "Every conversation retires a doubt. Keep asking.",
			},
			{
				Number:      3,
				Title:       "Learning Foundation",
				WeeksLabel:  "Weeks 13-20",
				Description: "Lay down the fundamentals properly. On this timeline you can afford depth over cramming.",
				Objectives: []string{
					"Complete foundational training for your chosen direction",
					"Establish a sustainable weekly learning rhythm",
					"Join 2 communities where practitioners gather",
				},
				Tasks: tasks(tl, 3,
					"Enroll in one substantial course and finish the first half",
					"Schedule 5 hours of learning per week and protect them",
					"Join a community and introduce yourself",
					"Teach one thing you learned to someone else each month",
				),
				MotivationalMessage: "Fundamentals feel slow until suddenly everything built on them feels easy.",
			},
			{
				Number:      4,
				Title:       "Applied Practice",
				WeeksLabel:  "Weeks 21-28",
				Description: "Move from learning to doing. Real projects expose real gaps and produce real proof.",
				Objectives: []string{
					"Complete 2 substantial projects in your new direction",
					"Get structured feedback from experienced practitioners",
					"Start a public record of your work",
				},
				Tasks: tasks(tl, 4,
					"Scope and ship your first real project",
					"Request a project review from 2 practitioners",
					"Publish a write-up of what you built and learned",
					"Start your second, more ambitious project",
				),
				MotivationalMessage: "Proof beats promise. You are building undeniable evidence.",
			},
			{
				Number:      5,
				Title:       "Visibility & Network",
				WeeksLabel:  "Weeks 29-36",
				Description: "Become known in your target field before the search begins. A year of quiet work deserves an audience.",
				Objectives: []string{
					"Grow an engaged professional network in your new field",
					"Publish or present your work at least monthly",
					"Find 2 mentors invested in your transition",
				},
				Tasks: tasks(tl, 5,
					"Post about your work twice per month",
					"Attend one meetup or event per month",
					"Ask 2 respected practitioners to mentor you",
					"Offer help to 3 people in your community",
				),
				MotivationalMessage: "Generosity is the fastest networking strategy ever devised.",
			},
			{
				Number:      6,
				Title:       "Positioning & Materials",
				WeeksLabel:  "Weeks 37-42",
				Description: "Package a year of growth into materials that tell one coherent story.",
				Objectives: []string{
					"Rebuild your resume around the transition narrative",
					"Curate a portfolio of your strongest 3 projects",
					"Rehearse your transition story until it is crisp",
				},
				Tasks: tasks(tl, 6,
					"Rewrite your resume as a transition story, not a history",
					"Select and polish your 3 best portfolio pieces",
					"Record yourself telling your story in under 2 minutes",
					"Get materials feedback from a mentor",
				),
				MotivationalMessage: "You are not hiding a transition. You are selling one, and it is a good story.",
			},
			{
				Number:      7,
				Title:       "Strategic Search",
				WeeksLabel:  "Weeks 43-48",
				Description: "A targeted search backed by a warm network. Precision over volume.",
				Objectives: []string{
					"Build a target list of 25 companies that fit your values",
					"Source referrals for the majority of your applications",
					"Maintain a steady, sustainable application cadence",
				},
				Tasks: tasks(tl, 7,
					"Rank 25 target companies by fit and reachability",
					"Map a warm contact at each top-10 company",
					"Apply to 5 well-researched roles per week",
					"Run a weekly retro on funnel and messaging",
				),
				MotivationalMessage: "You are not asking for a chance. You are offering a year of deliberate preparation.",
			},
			{
				Number:      8,
				Title:       "Close & Transition",
				WeeksLabel:  "Weeks 49-52",
				Description: "Interviews, negotiation, and a clean handover into the new chapter.",
				Objectives: []string{
					"Convert interviews with rehearsed, evidence-backed answers",
					"Negotiate from market data and multiple options",
					"Plan your first 90 days in the new role",
				},
				Tasks: tasks(tl, 8,
					"Run full mock interviews for each final-round company",
					"Prepare a negotiation sheet with data and walk-away point",
					"Draft a 90-day plan for your new role",
					"Write thank-you notes to everyone who helped this year",
				),
				MotivationalMessage: "Fifty-two weeks ago this was a wish. Now it is a schedule. Close it out.",
			},
		},
	}
}

// strategicPlan is the 12m+ catalog: ten phases over 540 days.
func strategicPlan() types.RoadmapPlan {
	const tl = TimelineOver12Months
	return types.RoadmapPlan{
		Name:      "Long-Term Career Mastery Roadmap",
		TotalDays: 540,
		Strategy:  types.StrategyStrategic,
		Phases: []types.Phase{
			{
				Number:      1,
				Title:       "Vision & Values",
				WeeksLabel:  "Weeks 1-8",
				Description: "Define the destination before the route. A multi-year change deserves a written vision.",
				Objectives: []string{
					"Write a 3-year career vision grounded in your values",
					"Identify the transferable skills your vision will be built on",
					"Set 3 measurable milestones for the next 18 months",
				},
				Tasks: tasks(tl, 1,
					"Draft your 3-year vision statement",
					"List the skills and experiences the vision requires",
					"Define 3 milestones with dates and success criteria",
					"Share the vision with someone who will hold you to it",
				),
				MotivationalMessage: "Long games are won by people who know why they are playing.",
			},
			{
				Number:      2,
				Title:       "Landscape Research",
				WeeksLabel:  "Weeks 9-16",
				Description: "Study your industry like an analyst: where it is growing, who is hiring, what is being automated away.",
				Objectives: []string{
					"Map the 5-year outlook for your industry",
					"Identify roles that are growing rather than shrinking",
					"Build a reading habit that keeps your research current",
				},
				Tasks: tasks(tl, 2,
					"Read 2 industry outlook reports and summarize them",
					"List 10 roles with strong 5-year demand",
					"Subscribe to 3 quality industry newsletters",
					"Interview 3 senior practitioners about where the field is going",
				),
				MotivationalMessage: "Information asymmetry is an advantage you can simply decide to have.",
			},
			{
				Number:      3,
				Title:       "Foundation Skills",
				WeeksLabel:  "Weeks 17-26",
				Description: "Unhurried, thorough skill building on the fundamentals everything else stacks on.",
				Objectives: []string{
					"Master the foundational skills of your target direction",
					"Establish a durable weekly practice routine",
					"Measure progress with monthly self-assessments",
				},
				Tasks: tasks(tl, 3,
					"Complete a comprehensive foundational course",
					"Practice deliberately 4 hours per week",
					"Run a monthly skills self-assessment",
					"Keep a learning log of concepts and open questions",
				),
				MotivationalMessage: "Mastery is boring to watch and thrilling to own. Keep stacking days.",
			},
			{
				Number:      4,
				Title:       "Advanced Development",
				WeeksLabel:  "Weeks 27-36",
				Description: "Go beyond competence into specialization. Pick the niche where you want to be known.",
				Objectives: []string{
					"Choose a specialization with durable demand",
					"Complete advanced training in your specialization",
					"Produce work only a specialist could produce",
				},
				Tasks: tasks(tl, 4,
					"Evaluate 3 possible specializations and pick one",
					"Finish an advanced course or certification",
					"Build a project that showcases specialist depth",
					"Write an in-depth article on a specialist topic",
				),
				MotivationalMessage: "Generalists get considered. Specialists get called.",
			},
			{
				Number:      5,
				Title:       "Real-World Application",
				WeeksLabel:  "Weeks 37-45",
				Description: "Put the specialization to work on real problems with real stakes, inside or outside your current job.",
				Objectives: []string{
					"Apply your new skills to 3 real projects",
					"Volunteer for stretch assignments in your current role",
					"Collect quantified results from every project",
				},
				Tasks: tasks(tl, 5,
					"Pitch a project at work that uses your new skills",
					"Take on one freelance or volunteer project",
					"Document outcomes with numbers for each project",
					"Request written feedback from project stakeholders",
				),
				MotivationalMessage: "Experience is just projects you finished. Go finish some.",
			},
			{
				Number:      6,
				Title:       "Thought Leadership",
				WeeksLabel:  "Weeks 46-54",
				Description: "Shift from consuming the field to contributing to it. Visibility compounds like skill does.",
				Objectives: []string{
					"Publish regularly on your specialist topic",
					"Speak at 2 community events or podcasts",
					"Grow your professional network around your specialty",
				},
				Tasks: tasks(tl, 6,
					"Publish one substantial piece per month",
					"Pitch talks to 4 meetups or conferences",
					"Start conversations with 5 specialists per month",
					"Curate and share the best work of others weekly",
				),
				MotivationalMessage: "The field remembers contributors. Become one.",
			},
			{
				Number:      7,
				Title:       "Mentorship & Leadership",
				WeeksLabel:  "Weeks 55-62",
				Description: "Multiply your impact through others. Leadership experience is built before the title arrives.",
				Objectives: []string{
					"Mentor 2 people earlier in the path you took",
					"Lead an initiative end to end",
					"Build relationships with 3 senior sponsors",
				},
				Tasks: tasks(tl, 7,
					"Offer mentorship in your community",
					"Volunteer to lead a project or working group",
					"Schedule quarterly conversations with senior sponsors",
					"Write up your leadership lessons monthly",
				),
				MotivationalMessage: "Teaching is the final exam of mastery. You are ready to sit it.",
			},
			{
				Number:      8,
				Title:       "Strategic Positioning",
				WeeksLabel:  "Weeks 63-68",
				Description: "Assemble eighteen months of evidence into an unmistakable professional identity.",
				Objectives: []string{
					"Craft a positioning statement that matches your body of work",
					"Overhaul resume, portfolio and profiles around it",
					"Collect endorsements from collaborators and mentors",
				},
				Tasks: tasks(tl, 8,
					"Write your positioning statement and test it on peers",
					"Rebuild your resume and portfolio around the specialty",
					"Request recommendations from 5 collaborators",
					"Align every public profile with the positioning",
				),
				MotivationalMessage: "You are no longer applying as a hopeful. You are arriving as a known quantity.",
			},
			{
				Number:      9,
				Title:       "Opportunity Harvest",
				WeeksLabel:  "Weeks 69-74",
				Description: "With reputation in place, run a selective search where inbound interest meets outbound precision.",
				Objectives: []string{
					"Activate your network with a clear, specific ask",
					"Target 15 organizations that fit your vision",
					"Pursue only roles that advance the 3-year vision",
				},
				Tasks: tasks(tl, 9,
					"Announce your availability to your network",
					"Shortlist 15 organizations and map warm paths in",
					"Apply or get referred to 3 roles per week",
					"Decline politely anything off-vision",
				),
				MotivationalMessage: "Patience bought you options. Spend them deliberately.",
			},
			{
				Number:      10,
				Title:       "Negotiate & Ascend",
				WeeksLabel:  "Weeks 75-78",
				Description: "Close the chapter from strength: negotiate hard, transition cleanly, and set up the next cycle of growth.",
				Objectives: []string{
					"Negotiate compensation from documented market leverage",
					"Plan a clean exit and a strong first quarter",
					"Schedule your next annual vision review",
				},
				Tasks: tasks(tl, 10,
					"Prepare a negotiation case built on your documented results",
					"Compare final offers against your vision, not just salary",
					"Write your first-90-days plan",
					"Book a vision review one year out",
				),
				MotivationalMessage: "Eighteen months of compounding just paid out. And the curve keeps going up.",
			},
		},
	}
}
