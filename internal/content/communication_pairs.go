package content

import "github.com/elmcrest/compass-service/internal/models"

const (
	commPairExperienceHeading = "How this often shows up with others:"
	commPairStretchHeading    = "Stretch ideas for your communication:"
)

// communicationPairs covers every ordered primary+secondary style
// combination (12). Keys are order-sensitive: Director+Encourager reads
// differently from Encourager+Director.
var communicationPairs = map[pair]Block{
	{models.TraitDirector, models.TraitEncourager}: {
		Label:   "Director + Encourager",
		Summary: "You blend decisive, crisis-ready leadership (Director) with energizing, hopeful communication (Encourager). You’re likely to set direction quickly and then rally people to move with you.",
		Lists: []List{
			{Heading: commPairExperienceHeading, Items: []string{
				"Shift Supervisors may appreciate that you make decisions and also hype them up, but some may feel like they have to keep up with your pace even when they’re exhausted.",
				"YDPs may see you as inspiring and charismatic, but they might not always feel safe disagreeing with you once you’ve “sold” a plan with enthusiasm.",
				"Youth can experience you as strong and confident with a big presence—this can be regulating for some, and intimidating for others who need more quiet space.",
				"Your supervisor may view you as a go-to driver for new initiatives, especially when something needs both momentum and buy-in from staff.",
			}},
			{Heading: commPairStretchHeading, Items: []string{
				"Before finalizing a decision, ask Shift Supervisors: “What are we not seeing from the floor?” and genuinely pause to listen.",
				"With YDPs, slow down after a pep talk and clarify: “What questions or concerns do you still have before we roll this out?”",
				"With youth, balance your big energy with moments of quiet, one-to-one check-ins where they get more room to talk.",
				"With your supervisor, name the operational risk of moving fast: “We can do this quickly if we also build in these supports or guardrails.”",
			}},
		},
	},
	{models.TraitDirector, models.TraitFacilitator}: {
		Label:   "Director + Facilitator",
		Summary: "You combine a bias for action (Director) with a genuine desire to keep relationships steady (Facilitator). You want things to move, but you also care how people feel along the way.",
		Lists: []List{
			{Heading: commPairExperienceHeading, Items: []string{
				"Shift Supervisors may experience you as fair and decisive—they know you will act, but they also feel you’ve heard them first.",
				"YDPs may see you as approachable but also clearly in charge, which can build trust if you’re consistent.",
				"Youth may feel that you’re firm but not reactive; you can be “the adult in the room” who keeps things calm while making necessary calls.",
				"Your supervisor may rely on you to implement tough decisions in a way that doesn’t blow up staff relationships.",
			}},
			{Heading: commPairStretchHeading, Items: []string{
				"When you notice yourself hesitating to make a hard call to keep everyone happy, ask: “What decision best protects youth and staff in the long term?”",
				"With Shift Supervisors, be explicit about decisions that aren’t negotiable vs. where you really want their input.",
				"With YDPs, after facilitating a conversation, end with clear follow-through: “Here’s what we’re actually going to do, starting next shift.”",
				"With your supervisor, be honest about any emotional load you’re carrying from trying to smooth everything out for everyone.",
			}},
		},
	},
	{models.TraitDirector, models.TraitTracker}: {
		Label:   "Director + Tracker",
		Summary: "You pair urgency and decisiveness (Director) with a strong focus on detail and procedure (Tracker). You push for high standards and clear accountability.",
		Lists: []List{
			{Heading: commPairExperienceHeading, Items: []string{
				"Shift Supervisors may feel they always need to be fully prepared with facts and documentation before coming to you, which can be helpful for quality but intimidating for new leaders.",
				"YDPs might appreciate that expectations are crystal clear, but some may experience you as strict or hard to please.",
				"Youth may experience you as very structured and firm; they may feel safest when things are predictable, but some may struggle with your low tolerance for chaos.",
				"Your supervisor may trust you deeply on audits, incidents, and follow-through because you rarely let details slide.",
			}},
			{Heading: commPairStretchHeading, Items: []string{
				"With Shift Supervisors, explicitly allow early-warning conversations: “You don’t have to have all the answers before you tell me something’s off.”",
				"With YDPs, balance corrective feedback with specific recognition when they improve even slightly on documentation or routines.",
				"With youth, try occasionally naming the “why” behind structure in simple, human language: “This schedule is here so you know what to expect. Surprises can be scary.”",
				"With your supervisor, periodically highlight where strict standards are helping kids AND where they might be creating burnout or fear for staff.",
			}},
		},
	},
	{models.TraitEncourager, models.TraitDirector}: {
		Label:   "Encourager + Director",
		Summary: "You lead with enthusiasm and vision (Encourager) and then back it up with decisive follow-through (Director). You’re often seen as a charismatic driver of change.",
		Lists: []List{
			{Heading: commPairExperienceHeading, Items: []string{
				"Shift Supervisors may feel energized by your belief in them but can feel pressured to keep saying yes to new ideas.",
				"YDPs may love your positivity but feel blindsided if a friendly conversation suddenly turns into a firm directive without much warning.",
				"Youth may experience you as fun and engaging when things are going well and very strong-willed when boundaries are crossed.",
				"Your supervisor may see you as someone who can “sell” a plan to your team and then actually get it done.",
			}},
			{Heading: commPairStretchHeading, Items: []string{
				"With Shift Supervisors, create explicit space to say no or negotiate capacity: “If this feels like too much right now, tell me and we’ll prioritize.”",
				"With YDPs, clearly differentiate between “I’m just brainstorming” and “This is the plan we’re committing to.”",
				"With youth, use your warmth first, then your firmness: “I care about you, and that’s why this boundary is still a hard no.”",
				"With your supervisor, share not just the enthusiasm around initiatives but also realistic limits of your and your team’s bandwidth.",
			}},
		},
	},
	{models.TraitEncourager, models.TraitFacilitator}: {
		Label:   "Encourager + Facilitator",
		Summary: "You are relational, inclusive, and positive. You pay attention to how people feel and you want the team and the youth to feel seen and supported.",
		Lists: []List{
			{Heading: commPairExperienceHeading, Items: []string{
				"Shift Supervisors often experience you as someone they can be honest with without fear of being shut down.",
				"YDPs may feel you “get” how hard the work is and appreciate that you see them as people, not just staff.",
				"Youth may experience you as one of the more approachable leaders on campus, someone they can talk to when they’re upset.",
				"Your supervisor may rely on you to support morale and connection when the team is under stress.",
			}},
			{Heading: commPairStretchHeading, Items: []string{
				"With Shift Supervisors, when there’s a pattern that needs to change, practice starting with empathy and then naming the behavior clearly and specifically.",
				"With YDPs, resist taking on everyone’s emotional load—offer support, but also help them connect to other resources (EAP, peers, debriefs).",
				"With youth, maintain structure while being caring: “I understand why you’re angry, and I still can’t allow X. Here’s what we can do.”",
				"With your supervisor, clearly state your own needs and boundaries instead of silently absorbing more emotional labor.",
			}},
		},
	},
	{models.TraitEncourager, models.TraitTracker}: {
		Label:   "Encourager + Tracker",
		Summary: "You combine a warm, people-focused style (Encourager) with a strong respect for structure and detail (Tracker). You help change feel both human and organized.",
		Lists: []List{
			{Heading: commPairExperienceHeading, Items: []string{
				"Shift Supervisors may feel both supported and challenged—you cheer them on and you care about the protocols being followed.",
				"YDPs may find you approachable but also clear that expectations around documentation and routines are non-negotiable.",
				"Youth may see you as someone who cares about fun and connection but also means what you say about limits and safety.",
				"Your supervisor may rely on you to help translate policy changes into language and steps that staff actually understand and adopt.",
			}},
			{Heading: commPairStretchHeading, Items: []string{
				"With Shift Supervisors, be explicit about what is truly flexible vs. what is not—to avoid confusion between ‘nice to have’ and ‘must do’.",
				"With YDPs, use your encouragement to help them improve on the exact details you need, not just to make them feel better in the moment.",
				"With youth, explain why structure exists in terms of their safety and success, not just “because that’s the rule.”",
				"With your supervisor, name where staff need more time or training to realistically meet the standards you’re reinforcing.",
			}},
		},
	},
	{models.TraitFacilitator, models.TraitDirector}: {
		Label:   "Facilitator + Director",
		Summary: "You prefer to listen first and build consensus (Facilitator), but you can step into decisive mode (Director) when needed. You are often a bridge between the team’s input and the necessary action.",
		Lists: []List{
			{Heading: commPairExperienceHeading, Items: []string{
				"Shift Supervisors may appreciate that you ask for their perspective and then actually make a call so they’re not stuck in limbo.",
				"YDPs may feel you’re fair and willing to hear their concerns even when the final decision isn’t their first choice.",
				"Youth may experience you as calm and firm, not overly reactive—someone who really hears them and then clearly defines the boundary.",
				"Your supervisor may see you as someone who can “translate” leadership decisions in ways that staff can live with.",
			}},
			{Heading: commPairStretchHeading, Items: []string{
				"With Shift Supervisors, name explicitly when you’re shifting from listening mode to decision mode: “I’ve heard the input; here’s the decision we’re going with.”",
				"With YDPs, don’t over-own their reactions; you can care without carrying all of their feelings.",
				"With youth, hold steady when they test your limits, and remind yourself that some pushback is a sign you’re holding needed structure.",
				"With your supervisor, be candid about how much time it takes to bring people along, and where you might need their backing to hold the line.",
			}},
		},
	},
	{models.TraitFacilitator, models.TraitEncourager}: {
		Label:   "Facilitator + Encourager",
		Summary: "You blend a calm, listening posture (Facilitator) with warmth and positivity (Encourager). You help people feel safe and hopeful at the same time.",
		Lists: []List{
			{Heading: commPairExperienceHeading, Items: []string{
				"Shift Supervisors may see you as a safe person to bring mistakes or worries to, without fear of being shamed.",
				"YDPs may feel seen and uplifted, especially when the work feels heavy and repetitive.",
				"Youth may experience you as a steady, kind adult who doesn’t give up on them easily.",
				"Your supervisor may rely on you to support morale and connection when the team is under stress.",
			}},
			{Heading: commPairStretchHeading, Items: []string{
				"With Shift Supervisors, practice being more direct when standards aren’t met: “I care about you, and this still has to be corrected by Friday.”",
				"With YDPs, avoid cushioning feedback so much that the message becomes unclear—name the behavior change you need.",
				"With youth, you can be kind and clear: “I’m not going anywhere, and that behavior is still not okay here.”",
				"With your supervisor, share not just how others feel but also what concrete support you need in order to keep carrying this emotional work.",
			}},
		},
	},
	{models.TraitFacilitator, models.TraitTracker}: {
		Label:   "Facilitator + Tracker",
		Summary: "You combine care for people (Facilitator) with care for detail and consistency (Tracker). You create calmer, more predictable environments.",
		Lists: []List{
			{Heading: commPairExperienceHeading, Items: []string{
				"Shift Supervisors may feel you’re both supportive and very clear about procedures—it’s safe to ask questions and safe to admit confusion.",
				"YDPs may see you as someone who will take the time to teach them the right way to do things instead of just critiquing.",
				"Youth may experience your units as structured and regulated, with routines that help them know what to expect.",
				"Your supervisor may see you as reliable, steady, and low-drama, especially around audits and compliance work.",
			}},
			{Heading: commPairStretchHeading, Items: []string{
				"With Shift Supervisors, be careful not to quietly pick up tasks yourself instead of delegating or addressing performance conversations.",
				"With YDPs, don’t let your desire to avoid conflict stop you from naming unsafe or unhelpful patterns when you see them.",
				"With youth, remember that some flexibility can be regulating too—look for safe places to say yes when you can.",
				"With your supervisor, name where constant last-minute changes from above make it harder to deliver quality and stability on the floor.",
			}},
		},
	},
	{models.TraitTracker, models.TraitDirector}: {
		Label:   "Tracker + Director",
		Summary: "You lead with structure and detail (Tracker), then act decisively (Director). You want plans to be sound and aligned before you move.",
		Lists: []List{
			{Heading: commPairExperienceHeading, Items: []string{
				"Shift Supervisors may feel very clear on expectations, but also like they need to come to you with their homework done.",
				"YDPs may appreciate the order you bring, but some may feel anxious about making mistakes around you.",
				"Youth may experience your programs as tightly run, with less room for chaos, which can be very regulating for some and frustrating for others.",
				"Your supervisor may depend on you for consistent follow-through when something really matters for safety or compliance.",
			}},
			{Heading: commPairStretchHeading, Items: []string{
				"With Shift Supervisors, occasionally invite rough drafts: “Bring me your early thoughts, not just the final proposal.”",
				"With YDPs, show that learning is expected: “Getting it wrong the first few times is part of learning—what matters is adjusting.”",
				"With youth, try small moments of flexibility inside your structure so they experience you as human, not just rule-enforcing.",
				"With your supervisor, name where your high standards are working and where they may be driving staff stress beyond what’s sustainable.",
			}},
		},
	},
	{models.TraitTracker, models.TraitEncourager}: {
		Label:   "Tracker + Encourager",
		Summary: "You balance a love of accuracy and process (Tracker) with relational energy (Encourager). You help people feel taken care of and guided, not just policed.",
		Lists: []List{
			{Heading: commPairExperienceHeading, Items: []string{
				"Shift Supervisors may feel you’re both approachable and organized—they can talk through issues and then leave with a concrete plan.",
				"YDPs may feel that you notice their efforts and also help them correct mistakes in a way that doesn’t feel shaming.",
				"Youth may experience you as consistent but not cold; you remember details about them and follow through on what you say.",
				"Your supervisor may see you as someone who can roll out new protocols in a way that people actually adopt because they feel supported.",
			}},
			{Heading: commPairStretchHeading, Items: []string{
				"With Shift Supervisors, clarify where they truly own decisions vs. where you need to be consulted, so they don’t become over-dependent.",
				"With YDPs, don’t hide your standards behind niceness—being clear is an act of support.",
				"With youth, be careful not to overpromise when you’re excited to help; be honest about what you can and can’t do.",
				"With your supervisor, highlight how much relational work you’re doing in addition to the procedural work, so it’s seen and valued.",
			}},
		},
	},
	{models.TraitTracker, models.TraitFacilitator}: {
		Label:   "Tracker + Facilitator",
		Summary: "You bring order and calm together. You like clear plans, and you also want people to feel safe and supported within those plans.",
		Lists: []List{
			{Heading: commPairExperienceHeading, Items: []string{
				"Shift Supervisors may feel they can trust your word—if you say you’ll do something or follow up, you do.",
				"YDPs may see you as steady and consistent, a leader who doesn’t swing wildly based on mood.",
				"Youth may experience your units as predictable in a way that feels safe, especially for kids with trauma histories.",
				"Your supervisor may rarely worry about your paperwork or follow-through, because you keep things tight and stable.",
			}},
			{Heading: commPairStretchHeading, Items: []string{
				"With Shift Supervisors, watch for signs you’re quietly absorbing tasks they should own; invite them into shared problem-solving instead.",
				"With YDPs, practice direct feedback when standards aren’t met, even if it feels uncomfortable.",
				"With youth, remember to make relational deposits, not just structural ones—short, human moments go a long way.",
				"With your supervisor, don’t undersell your impact—your quiet consistency keeps a lot from falling apart.",
			}},
		},
	},
}
