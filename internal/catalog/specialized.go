package catalog

import (
	"github.com/ascendlabs/coach-roadmap-service/types"
)

// The Freelance/Startup and Salary Negotiation goals select entire dedicated
// catalogs instead of relabeling the shared one. Each branches on the pacing
// group: a compact 3-phase track for 1-3m/3-6m timelines and a 5-phase track
// for everything longer.

func freelancePlan(timeline string) types.RoadmapPlan {
	if isQuickTimeline(timeline) {
		return freelanceQuickPlan()
	}
	return freelanceLongPlan()
}

func negotiationPlan(timeline string) types.RoadmapPlan {
	if isQuickTimeline(timeline) {
		return negotiationQuickPlan()
	}
	return negotiationLongPlan()
}

func freelanceQuickPlan() types.RoadmapPlan {
	const tl = "fs-quick"
	return types.RoadmapPlan{
		Name:      "Freelance Launch Sprint",
		TotalDays: 120,
		Strategy:  types.StrategySprint,
		Phases: []types.Phase{
			{
				Number:      1,
				Title:       "Offer & Niche",
				WeeksLabel:  "Weeks 1-5",
				Description: "Package one sellable offer for one specific audience. Vague services do not sell on a short runway.",
				Objectives: []string{
					"Define a niche where you have credible experience",
					"Package one concrete offer with scope and price",
					"Validate the offer with 5 potential buyers",
				},
				Tasks: tasks(tl, 1,
					"Write a one-sentence niche statement",
					"Draft your offer with deliverables, timeline and price",
					"Pitch the offer to 5 people who could buy it",
					"Revise the offer based on what you heard",
				),
				MotivationalMessage: "An imperfect offer in front of buyers beats a perfect one in a drawer.",
			},
			{
				Number:      2,
				Title:       "First Clients",
				WeeksLabel:  "Weeks 6-12",
				Description: "Land the first paying clients through your existing network and direct outreach.",
				Objectives: []string{
					"Close your first 2 paying clients",
					"Set up simple contracts and invoicing",
					"Deliver visibly excellent work worth referring",
				},
				Tasks: tasks(tl, 2,
					"Announce your services to your network",
					"Send 10 personalized outreach messages per week",
					"Set up a contract template and invoicing tool",
					"Over-deliver on your first engagement and ask for a testimonial",
				),
				MotivationalMessage: "Your first client is the hardest and the most important. Everything compounds from there.",
			},
			{
				Number:      3,
				Title:       "Stabilize & Systemize",
				WeeksLabel:  "Weeks 13-17",
				Description: "Turn early wins into a repeatable pipeline so the business survives past its launch energy.",
				Objectives: []string{
					"Build a weekly lead-generation routine",
					"Raise your rate for the next engagement",
					"Create case studies from delivered work",
				},
				Tasks: tasks(tl, 3,
					"Block 4 hours per week for outreach forever",
					"Write 2 case studies with concrete results",
					"Quote your next project at a higher rate",
					"Ask every happy client for one referral",
				),
				MotivationalMessage: "You are not job hunting anymore. You are running a business. Act like its CEO.",
			},
		},
	}
}

func freelanceLongPlan() types.RoadmapPlan {
	const tl = "fs-long"
	return types.RoadmapPlan{
		Name:      "Freelance & Startup Foundation Roadmap",
		TotalDays: 365,
		Strategy:  types.StrategySustainable,
		Phases: []types.Phase{
			{
				Number:      1,
				Title:       "Research & Runway",
				WeeksLabel:  "Weeks 1-8",
				Description: "Study the market and your finances before quitting anything. Runway is strategy.",
				Objectives: []string{
					"Calculate your personal runway and break-even number",
					"Research 3 service or product directions",
					"Pick the direction with the clearest demand signal",
				},
				Tasks: tasks(tl, 1,
					"Build a personal budget and compute months of runway",
					"Interview 10 potential customers about their problems",
					"Analyze 5 competitors' offers and pricing",
					"Write a one-page thesis for your chosen direction",
				),
				MotivationalMessage: "Dreams need spreadsheets. This phase is where yours gets one.",
			},
			{
				Number:      2,
				Title:       "Build in the Margins",
				WeeksLabel:  "Weeks 9-20",
				Description: "Build the offer, the skills and the audience on nights and weekends while income continues.",
				Objectives: []string{
					"Develop the skills your offer depends on",
					"Build a minimum viable version of your offer",
					"Start an audience around the problem you solve",
				},
				Tasks: tasks(tl, 2,
					"Close your top skill gap with a focused course",
					"Ship a v1 of your service package or product",
					"Publish weekly about the problem space",
					"Collect 20 email subscribers or followers who care",
				),
				MotivationalMessage: "Every evening you invest now is de-risking the leap later.",
			},
			{
				Number:      3,
				Title:       "Paid Validation",
				WeeksLabel:  "Weeks 21-32",
				Description: "Get strangers to pay. Revenue is the only validation that cannot lie to you.",
				Objectives: []string{
					"Earn your first revenue from outside your network",
					"Iterate the offer based on paying-customer feedback",
					"Define the metrics that tell you it is working",
				},
				Tasks: tasks(tl, 3,
					"Launch the offer publicly",
					"Close 3 paying customers you did not previously know",
					"Run a feedback call with every customer",
					"Set a monthly revenue target and track it",
				),
				MotivationalMessage: "The market just voted with money. Listen carefully to what it said.",
			},
			{
				Number:      4,
				Title:       "Transition & Scale",
				WeeksLabel:  "Weeks 33-44",
				Description: "Cross over: reduce employment dependence as the business proves it can carry weight.",
				Objectives: []string{
					"Reach consistent monthly revenue at half your break-even",
					"Plan the employment exit with dates and triggers",
					"Systemize delivery so quality survives growth",
				},
				Tasks: tasks(tl, 4,
					"Hit your part-time revenue target 2 months running",
					"Write your exit plan with concrete go/no-go triggers",
					"Document your delivery process end to end",
					"Raise prices for new customers",
				),
				MotivationalMessage: "You are not jumping off a cliff. You are walking across a bridge you built.",
			},
			{
				Number:      5,
				Title:       "Full-Time Footing",
				WeeksLabel:  "Weeks 45-52",
				Description: "Operate as a full-time business: pipeline, finances, and the discipline of an owner.",
				Objectives: []string{
					"Establish a repeatable sales pipeline",
					"Put business finances and taxes in order",
					"Set the next year's growth plan",
				},
				Tasks: tasks(tl, 5,
					"Build a simple CRM and review it weekly",
					"Separate business banking and meet an accountant",
					"Write next year's plan with quarterly targets",
					"Celebrate surviving year one, then book a real vacation",
				),
				MotivationalMessage: "A year ago this was an idea. Now it pays your rent. Protect it and grow it.",
			},
		},
	}
}

func negotiationQuickPlan() types.RoadmapPlan {
	const tl = "salary-quick"
	return types.RoadmapPlan{
		Name:      "Salary Negotiation Sprint",
		TotalDays: 90,
		Strategy:  types.StrategySprint,
		Phases: []types.Phase{
			{
				Number:      1,
				Title:       "Evidence & Benchmarks",
				WeeksLabel:  "Weeks 1-4",
				Description: "Build the factual case: what you have delivered and what the market pays for it.",
				Objectives: []string{
					"Document your last 12 months of quantified wins",
					"Benchmark your role's compensation from 3 sources",
					"Identify the decision maker and the budget cycle",
				},
				Tasks: tasks(tl, 1,
					"Write a brag document with numbers for every win",
					"Pull salary data from 3 independent sources",
					"Find out when raises are actually decided at your company",
					"Ask 2 peers in the industry about their band",
				),
				MotivationalMessage: "Negotiation is 80 percent preparation. You are doing the 80 percent now.",
			},
			{
				Number:      2,
				Title:       "Case & Rehearsal",
				WeeksLabel:  "Weeks 5-8",
				Description: "Turn the evidence into a concise ask and rehearse until the discomfort is gone.",
				Objectives: []string{
					"Write a one-page case linking your results to the ask",
					"Set your target, fallback and walk-away numbers",
					"Rehearse the conversation at least 3 times",
				},
				Tasks: tasks(tl, 2,
					"Draft the one-page case for your raise or promotion",
					"Decide target, acceptable and walk-away outcomes",
					"Role-play the conversation with a friend",
					"Prepare calm answers to the 5 likely objections",
				),
				MotivationalMessage: "The first time you say your number out loud should not be in the room.",
			},
			{
				Number:      3,
				Title:       "The Ask & Follow-Through",
				WeeksLabel:  "Weeks 9-13",
				Description: "Have the conversation, handle the response professionally, and lock in whatever was agreed.",
				Objectives: []string{
					"Hold the negotiation conversation with your manager",
					"Get every commitment in writing",
					"Define the review plan if the answer is not yet",
				},
				Tasks: tasks(tl, 3,
					"Book a dedicated meeting, not a hallway chat",
					"Make the ask and then stop talking",
					"Send a same-day summary email of what was agreed",
					"If deferred, agree on criteria and a date to revisit",
				),
				MotivationalMessage: "You asked from evidence, not entitlement. Whatever the answer, you moved the line.",
			},
		},
	}
}

func negotiationLongPlan() types.RoadmapPlan {
	const tl = "salary-long"
	return types.RoadmapPlan{
		Name:      "Promotion & Compensation Roadmap",
		TotalDays: 365,
		Strategy:  types.StrategyStrategic,
		Phases: []types.Phase{
			{
				Number:      1,
				Title:       "Promotion Criteria",
				WeeksLabel:  "Weeks 1-6",
				Description: "Find out exactly what the next level requires at your company, in writing where possible.",
				Objectives: []string{
					"Obtain the formal criteria for the next level",
					"Gap-analyze yourself against those criteria honestly",
					"Align with your manager on what promotion requires",
				},
				Tasks: tasks(tl, 1,
					"Get the leveling guide or job description for the next level",
					"Score yourself against each criterion with evidence",
					"Ask your manager directly what is missing",
					"Write the gap list you will spend this year closing",
				),
				MotivationalMessage: "Promotions go to people who know the rules of the game they are playing.",
			},
			{
				Number:      2,
				Title:       "High-Visibility Impact",
				WeeksLabel:  "Weeks 7-20",
				Description: "Close the gaps with work that matters to the business and is seen by the people who decide.",
				Objectives: []string{
					"Lead at least one initiative tied to a business goal",
					"Make your results visible beyond your direct team",
					"Build support among the people in the promotion room",
				},
				Tasks: tasks(tl, 2,
					"Volunteer to lead a project your skip-level cares about",
					"Send a monthly impact summary to your manager",
					"Present your work to another team or leadership",
					"Build relationships with 3 likely promotion voters",
				),
				MotivationalMessage: "Do great work, then make sure the right people know. Both halves matter.",
			},
			{
				Number:      3,
				Title:       "Evidence File",
				WeeksLabel:  "Weeks 21-32",
				Description: "Maintain a running, quantified record so the promotion case writes itself.",
				Objectives: []string{
					"Keep a weekly brag document with metrics",
					"Collect written praise and peer feedback as it happens",
					"Benchmark next-level compensation externally",
				},
				Tasks: tasks(tl, 3,
					"Update your brag document every Friday",
					"Save every piece of written recognition",
					"Gather salary data for the next level from 3 sources",
					"Draft the first version of your promotion packet",
				),
				MotivationalMessage: "Memories fade by review season. Documents do not.",
			},
			{
				Number:      4,
				Title:       "The Campaign",
				WeeksLabel:  "Weeks 33-44",
				Description: "Run the promotion conversation as a campaign across the review cycle, not a single meeting.",
				Objectives: []string{
					"Submit a complete, evidence-backed promotion case",
					"Secure explicit advocacy from your manager",
					"Time the ask to the compensation calendar",
				},
				Tasks: tasks(tl, 4,
					"Finalize your promotion packet with your manager's input",
					"Ask your manager to champion the case, explicitly",
					"Check in monthly on where the case stands",
					"Line up a sponsor outside your direct chain",
				),
				MotivationalMessage: "You are not waiting to be noticed. You are running a campaign with a deadline.",
			},
			{
				Number:      5,
				Title:       "Close or Pivot",
				WeeksLabel:  "Weeks 45-52",
				Description: "Land the promotion and negotiate the compensation, or execute the external alternative from strength.",
				Objectives: []string{
					"Negotiate the new level's compensation, not just the title",
					"If declined, get concrete criteria and a date, in writing",
					"Keep an external option warm as leverage and insurance",
				},
				Tasks: tasks(tl, 5,
					"Negotiate salary for the new level using your external data",
					"If deferred, agree written criteria and a revisit date",
					"Take 2 external interviews to calibrate your market value",
					"Decide your path forward and commit to it",
				),
				MotivationalMessage: "A year of evidence means you win either way: promoted here, or valued properly elsewhere.",
			},
		},
	}
}
