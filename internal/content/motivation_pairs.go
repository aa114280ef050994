package content

import "github.com/elmcrest/compass-service/internal/models"

const (
	motivPairMeansHeading = "What this tends to mean:"
	motivPairIdeasHeading = "Ideas to better support your motivation:"
)

// motivationPairs covers every ordered primary+secondary driver
// combination (12).
var motivationPairs = map[pair]Block{
	{models.TraitGrowth, models.TraitPurpose}: {
		Label:   "Growth + Purpose",
		Summary: "You’re fueled by learning and development that clearly connects to the mission of serving youth well. You want to get better in ways that actually matter for kids and families.",
		Lists: []List{
			{Heading: motivPairMeansHeading, Items: []string{
				"You’re likely to seek out trainings, coaching, or new responsibilities that directly improve care or staff support on your units.",
				"You may feel drained if you’re learning skills that feel disconnected from the realities of Elmcrest or the needs of your youth.",
				"You care not just about your own growth, but about creating a better environment for Shift Supervisors, YDPs, and youth.",
			}},
			{Heading: motivPairIdeasHeading, Items: []string{
				"Ask your supervisor for development goals that explicitly tie to youth outcomes (e.g., fewer incidents, better transitions, improved family engagement).",
				"Invite Shift Supervisors into learning with you—co-attend a training and then co-design small changes on the floor.",
				"When you feel stuck in bureaucracy, reconnect with a specific youth or success story to remind yourself why your growth matters.",
			}},
		},
	},
	{models.TraitGrowth, models.TraitConnection}: {
		Label:   "Growth + Connection",
		Summary: "You grow best in community. You’re energized when you’re learning with and from others, not just from a manual or an online course.",
		Lists: []List{
			{Heading: motivPairMeansHeading, Items: []string{
				"You’re likely to light up when you’re in a room with other supervisors, sharing strategies and lessons learned.",
				"You may feel discouraged if you’re left to figure everything out alone without peers to process with.",
				"You probably enjoy developing Shift Supervisors and YDPs and watching them step into more skill and confidence.",
			}},
			{Heading: motivPairIdeasHeading, Items: []string{
				"Form a small peer group of Program Supervisors to debrief tough cases and share what’s working in your cottages or programs.",
				"Build structured learning moments into your supervision with Shift Supervisors: “What’s one thing you’d like to get better at this month?”",
				"Ask your supervisor if you can occasionally shadow or partner with another leader whose approach you admire.",
			}},
		},
	},
	{models.TraitGrowth, models.TraitAchievement}: {
		Label:   "Growth + Achievement",
		Summary: "You’re driven to get better and to see concrete evidence that your growth is making a difference. You like to track progress.",
		Lists: []List{
			{Heading: motivPairMeansHeading, Items: []string{
				"You’re likely to set improvement goals for yourself and your program (incidents, documentation quality, staff retention).",
				"You may get restless or discouraged if you don’t see clear movement, even when change is happening slowly under the surface.",
				"You often turn feedback into action quickly and expect others to do the same.",
			}},
			{Heading: motivPairIdeasHeading, Items: []string{
				"Pick 2–3 key metrics that matter most to youth safety and staff sustainability, and track them simply month-to-month.",
				"Share improvement stories with your team so they see how their growth is tied to better results for kids.",
				"Ask your supervisor to help you differentiate between what’s in your control and what is system-level, so you don’t over-own everything.",
			}},
		},
	},
	{models.TraitPurpose, models.TraitGrowth}: {
		Label:   "Purpose + Growth",
		Summary: "You’re guided by values and want to keep expanding your capacity to live those values out as a supervisor and leader.",
		Lists: []List{
			{Heading: motivPairMeansHeading, Items: []string{
				"You’re drawn to learning that helps you advocate better for youth, families, and staff—especially around trauma, equity, and ethics.",
				"You may feel especially discouraged when you see systemic barriers getting in the way of what you believe is right.",
				"You often hold yourself to a high internal standard about how you treat people across power differences (youth, YDPs, peers, leadership).",
			}},
			{Heading: motivPairIdeasHeading, Items: []string{
				"Name your top 3 values as a supervisor (e.g., safety, dignity, growth) and share them with your Shift Supervisors.",
				"Ask your supervisor to support you in development experiences that align with those values (trauma-informed leadership, DEI, restorative practices).",
				"When you run into system limits, ask: “What’s one small thing I can still do here that reflects my values?”",
			}},
		},
	},
	{models.TraitPurpose, models.TraitConnection}: {
		Label:   "Purpose + Connection",
		Summary: "You are most alive when strong relationships and meaningful work intersect. You care deeply about how people are treated in the system.",
		Lists: []List{
			{Heading: motivPairMeansHeading, Items: []string{
				"You notice when YDPs or Shift Supervisors feel invisible, unheard, or unfairly treated—and it bothers you.",
				"You may feel torn when leadership decisions seem misaligned with what feels right for youth or staff.",
				"You can be a powerful voice for culture, reminding people why Elmcrest exists and how we want to treat each other.",
			}},
			{Heading: motivPairIdeasHeading, Items: []string{
				"Create small, consistent rituals of appreciation for YDPs and Shift Supervisors that connect back to mission (e.g., “Here’s how your work impacted this youth this week”).",
				"In 1:1s, ask staff: “Where are we acting in line with our values? Where are we drifting?” and bring themes (not names) to your supervisor.",
				"Protect time each month to reconnect with mission—through a story, a youth note, or reflecting on a moment that reminded you why you’re here.",
			}},
		},
	},
	{models.TraitPurpose, models.TraitAchievement}: {
		Label:   "Purpose + Achievement",
		Summary: "You want to accomplish things that matter. It’s not enough to hit numbers—you need to know that those numbers reflect real, meaningful change for youth and staff.",
		Lists: []List{
			{Heading: motivPairMeansHeading, Items: []string{
				"You’re motivated by goals that clearly connect to kids’ safety, healing, or long-term success.",
				"You may struggle with tasks that feel like “checking boxes” without real impact.",
				"You likely think a lot about whether Elmcrest is living up to what it says it is about.",
			}},
			{Heading: motivPairIdeasHeading, Items: []string{
				"Work with your supervisor to define a few goals that are both measurable and clearly tied to youth well-being or staff sustainability.",
				"When given a task that feels purely bureaucratic, ask: “How can I connect this to something that genuinely matters for the kids or staff?”",
				"Share stories upward about how certain metrics reflect real change (or don’t), so leadership sees beyond the numbers.",
			}},
		},
	},
	{models.TraitConnection, models.TraitGrowth}: {
		Label:   "Connection + Growth",
		Summary: "You develop best when you feel part of a supportive team. Belonging and learning go hand-in-hand for you.",
		Lists: []List{
			{Heading: motivPairMeansHeading, Items: []string{
				"You’re energized by supervision, huddles, and team spaces where people are honest and curious together.",
				"Isolation or lack of relational support can quickly drain your motivation to try new things.",
				"You often bring others along in your learning—sharing resources, modeling vulnerability, and asking good questions.",
			}},
			{Heading: motivPairIdeasHeading, Items: []string{
				"Ask your supervisor for a regular reflective space, not just task-focused check-ins.",
				"Turn unit challenges into shared learning projects with Shift Supervisors and YDPs (e.g., “How can we improve transitions together?”).",
				"Identify one peer who can be a thought-partner for you, and commit to a monthly check-in about leadership growth.",
			}},
		},
	},
	{models.TraitConnection, models.TraitPurpose}: {
		Label:   "Connection + Purpose",
		Summary: "You are fueled by relationships that are anchored in shared values. Community and cause both matter deeply to you.",
		Lists: []List{
			{Heading: motivPairMeansHeading, Items: []string{
				"You’re highly sensitive to whether the climate in your program feels respectful, inclusive, and aligned with Elmcrest’s mission.",
				"You may feel particularly distressed when you see youth or staff being treated in ways that feel misaligned with your values.",
				"You can be a powerful connector across roles—youth, YDPs, Shift Supervisors, leadership—because you care about all of their experiences.",
			}},
			{Heading: motivPairIdeasHeading, Items: []string{
				"Use team meetings to connect everyday tasks to the bigger purpose: “Here’s how what we did this week mattered for our youth.”",
				"Bring value and climate concerns to your supervisor with curiosity: “Here’s what I’m noticing—can we think together about it?”",
				"Create small practices that reinforce dignity (e.g., how youth are greeted, how staff are spoken to during stress).",
			}},
		},
	},
	{models.TraitConnection, models.TraitAchievement}: {
		Label:   "Connection + Achievement",
		Summary: "You care about reaching goals together. Shared wins and mutual support are more energizing to you than solo success.",
		Lists: []List{
			{Heading: motivPairMeansHeading, Items: []string{
				"You’re motivated by seeing your whole team succeed, not just being the one “star” supervisor.",
				"You may feel discouraged if recognition or pressure is placed only on you, without including your Shift Supervisors and YDPs.",
				"You think strategically about who needs what role so the team can function well as a whole.",
			}},
			{Heading: motivPairIdeasHeading, Items: []string{
				"Design goals that explicitly name team contributions (e.g., “This outcome depends on how we all handle transitions and documentation”).",
				"Celebrate team progress out loud and often—highlighting how different people contributed to a win.",
				"Ask your supervisor to recognize your unit’s collective efforts, not just your own leadership, whenever possible.",
			}},
		},
	},
	{models.TraitAchievement, models.TraitGrowth}: {
		Label:   "Achievement + Growth",
		Summary: "You’re hungry to accomplish meaningful things and keep leveling up your leadership. You see yourself as a work in progress with high standards.",
		Lists: []List{
			{Heading: motivPairMeansHeading, Items: []string{
				"You may set ambitious expectations for yourself and feel frustrated when you don’t meet them quickly.",
				"You like clear indicators that your effort is making a difference for youth and staff.",
				"You may also expect a lot from your Shift Supervisors and YDPs in terms of performance and improvement.",
			}},
			{Heading: motivPairIdeasHeading, Items: []string{
				"Work with your supervisor to define realistic pacing so you’re not burning yourself (or your team) out chasing constant improvement.",
				"When YDPs or Shift Supervisors fall short, see it as data for coaching rather than proof they don’t care.",
				"Track growth not just in outcomes, but in skills—for you and your team (e.g., “We de-escalated without restraint X more times this month”).",
			}},
		},
	},
	{models.TraitAchievement, models.TraitPurpose}: {
		Label:   "Achievement + Purpose",
		Summary: "You want to hit targets that genuinely matter and feel right. The “what” and the “why” both have to line up for you.",
		Lists: []List{
			{Heading: motivPairMeansHeading, Items: []string{
				"You’re motivated when your goals align with safety, healing, and justice for youth and fairness for staff.",
				"You may resist or emotionally disengage from goals that feel performative or disconnected from kids’ real needs.",
				"You likely push yourself to do the right thing, even when no one is watching.",
			}},
			{Heading: motivPairIdeasHeading, Items: []string{
				"Ask your supervisor to connect new initiatives or metrics explicitly to how they support youth and staff well-being.",
				"When you feel a goal is misaligned, bring it forward with respect: “Help me understand how this supports our kids and staff.”",
				"Notice and name when goals DO reflect your values, so you don’t only focus on misalignments.",
			}},
		},
	},
	{models.TraitAchievement, models.TraitConnection}: {
		Label:   "Achievement + Connection",
		Summary: "You’re driven to succeed in ways that include and uplift others. You want the unit to do well, not just yourself.",
		Lists: []List{
			{Heading: motivPairMeansHeading, Items: []string{
				"You often think about how to set up Shift Supervisors and YDPs to win, not just how to carry things yourself.",
				"You may become frustrated if team recognition is rare, or if only negative outcomes are named.",
				"You look for ways to align tasks with people’s strengths so the team can excel together.",
			}},
			{Heading: motivPairIdeasHeading, Items: []string{
				"In supervision, talk with your Shift Supervisors about what “winning as a team” looks like on your program (e.g., fewer call-offs, smoother transitions, better communication).",
				"Intentionally match YDPs to roles or routines that fit their strengths, and tell them you see it.",
				"Ask your supervisor to help build in visible moments where your unit’s collective efforts are noticed and appreciated.",
			}},
		},
	},
}
