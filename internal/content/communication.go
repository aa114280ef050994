package content

import "github.com/elmcrest/compass-service/internal/models"

const commTipsHeading = "Tips for stretching this style in your Elmcrest role:"

// communicationTraits describes each single communication style in depth.
var communicationTraits = map[models.Trait]Block{
	models.TraitDirector: {
		Label:   "Director",
		Summary: "As a Program Supervisor, a Director style shows up as fast, decisive, and focused on safety and outcomes for youth. You bring clarity and movement when things feel stuck, especially in crises or high-pressure situations.",
		Lists: []List{{
			Heading: commTipsHeading,
			Items: []string{
				"With Shift Supervisors: Before giving your solution, ask, “What’s your read on this?” to signal that their perspective matters, not just their compliance.",
				"With YDPs: Pair clear expectations with appreciation: name one thing they’re doing well for youth before you redirect performance.",
				"With youth and families: Use warm + firm language: “I hear you and I care; here’s what has to happen next to keep everyone safe.”",
				"With your supervisor: When you present a plan, add one line on the people side: “Here’s the plan, and here’s how staff are reacting so far.”",
			},
		}},
	},
	models.TraitEncourager: {
		Label:   "Encourager",
		Summary: "As a Program Supervisor, an Encourager style brings energy, warmth, and optimism to Elmcrest. You help staff remember why they do this work and you often make youth and families feel welcomed and hopeful.",
		Lists: []List{{
			Heading: commTipsHeading,
			Items: []string{
				"With Shift Supervisors: After encouraging them, lock in structure: “I see how hard you’re working. Let’s pick the top 1–2 priorities for this week.”",
				"With YDPs: Balance praise with specificity: “You connect so well with the youth during transitions. I also need your documentation in by the end of shift.”",
				"With youth and families: Stay warm and honest: “I want to help, and I also have to be clear about the limits of what we can promise.”",
				"With your supervisor: Share wins and worries: “I’m excited about this idea, and I’m also noticing these risks or staff concerns.”",
			},
		}},
	},
	models.TraitFacilitator: {
		Label:   "Facilitator",
		Summary: "As a Program Supervisor, a Facilitator style creates emotional safety for staff and youth. You listen deeply, stay calm in conflict, and often hold the space where people can be honest about what’s really going on on the floor.",
		Lists: []List{{
			Heading: commTipsHeading,
			Items: []string{
				"With Shift Supervisors: Use compassionate clarity: “I value you, and I need to be direct that this pattern with scheduling has to change. Let’s fix it together.”",
				"With YDPs: Pair empathy with boundaries: “It makes sense that you’re tired. We still have to maintain coverage—let’s look at options that don’t burn you out further.”",
				"With youth and families: Offer calm firmness: “I’m not leaving, and I still can’t allow that behavior. Here’s what we can do instead.”",
				"With your supervisor: Advocate clearly: “We are meeting expectations, and we’re at risk of burnout on these shifts unless we adjust staffing or support.”",
			},
		}},
	},
	models.TraitTracker: {
		Label:   "Tracker",
		Summary: "As a Program Supervisor, a Tracker style shows up as thorough, process-focused, and detail-aware. You protect youth and staff by catching gaps in documentation, routines, and safety practices before they become real problems.",
		Lists: []List{{
			Heading: commTipsHeading,
			Items: []string{
				"With Shift Supervisors: When correcting process, add the ‘why’: “This documentation format matters because it protects you and the program in a review.”",
				"With YDPs: Normalize learning: “I don’t expect perfection, I expect effort. Here’s what you did well; here’s what to adjust next shift.”",
				"With youth and families: Start from relationship, then policy: “I want you to feel safe and know what to expect. That’s why we have this rule.”",
				"With your supervisor: When raising concerns, include a bright spot: pair a problem with one thing that’s going well on your unit.",
			},
		}},
	},
}
