package content

import "github.com/elmcrest/compass-service/internal/models"

const (
	crossStrengthsHeading = "Key strengths in your Elmcrest role:"
	crossWatchOutsHeading = "Important watch-outs to be mindful of:"
	crossSupportHeading   = "Support ideas and reflection prompts:"
)

// crossPairs maps every primary communication style crossed with every
// primary motivation driver (16). The final list in each block holds
// coaching questions and is rendered as prompts.
var crossPairs = map[pair]Block{
	{models.TraitDirector, models.TraitGrowth}: {
		Label:   "Director + Growth",
		Summary: "You lead with clear direction and you’re hungry to improve. You want your units to run well, and you want to keep leveling up how you and your team support youth.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You’re quick to turn new learning into concrete changes on the floor.",
				"Shift Supervisors know you will make decisions and also refine those decisions as you learn more.",
				"YDPs benefit from your desire to coach them into stronger practice, not just tell them what to do.",
				"Clinicians and leadership can count on you to actually implement new strategies instead of letting them sit on paper.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You may move faster than some staff can realistically integrate new practices.",
				"Less confident YDPs might feel like they’re always “behind” your expectations.",
				"In crisis, you might default to control before curiosity if you’re feeling pressure to “do it right.”",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Ask your supervisor for a small number of focused growth projects at a time instead of trying to improve everything at once.",
				"Co-design one development goal with each Shift Supervisor that feels stretching but achievable.",
				"Use huddles to introduce one practice at a time rather than rolling out multiple changes at once.",
			}},
			{Prompt: true, Items: []string{
				"Where do I see the biggest opportunity for growth in my program this month?",
				"What’s one way I can slow down enough for YDPs to actually practice a new skill instead of just hear about it?",
				"How can I bring clinical insight into my next coaching conversation with a Shift Supervisor?",
			}},
		},
	},
	{models.TraitDirector, models.TraitPurpose}: {
		Label:   "Director + Purpose",
		Summary: "You are driven to make clear, firm decisions that align with your values and with what’s right for youth and staff. You care not just about order, but about justice and integrity.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You advocate strongly when you believe something is not in the best interest of a youth or your staff.",
				"You’re willing to hold boundaries even when they’re unpopular, if they protect safety or dignity.",
				"Shift Supervisors see you as someone who stands for something, not just someone who enforces rules.",
				"Clinicians can trust you to protect treatment integrity even when things get messy.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You may experience intense frustration when the system feels misaligned with your values.",
				"You can come across as inflexible when you’re trying to protect what matters most.",
				"Youth may sometimes feel you are “too strict” if they don’t know the why behind your decisions.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Share your top 2–3 core values with your supervisor and Shift Supervisors so they understand what guides your decisions.",
				"Ask clinicians to help you translate your values into trauma-informed responses in difficult situations.",
				"Name the values behind limits with youth in simple language (safety, respect, fairness).",
			}},
			{Prompt: true, Items: []string{
				"Where do my values feel most aligned with how things are run right now?",
				"Where do I feel tension between what I believe is right and what the system expects?",
				"What is one small, concrete step I can take this week to move something in the direction of my values?",
			}},
		},
	},
	{models.TraitDirector, models.TraitConnection}: {
		Label:   "Director + Connection",
		Summary: "You want the team to feel connected and supported, and you also want clear direction. You’re trying to balance being the strong leader and the relational one.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You care about how your decisions land on your staff, not just whether they’re followed.",
				"You can be a powerful anchor in crises while still checking in on how YDPs are coping afterward.",
				"Youth may feel you are firm but not distant when you intentionally show care in small ways.",
				"Shift Supervisors know you’re invested in the team, not just the tasks.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You may hold back on hard conversations to avoid straining relationships.",
				"You might feel pulled between enforcing expectations and wanting everyone to like you.",
				"If you’re tired, you may swing between “all business” and “all connection” instead of integrating both.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Script a few go-to phrases that are both firm and relational (e.g., “I care about you and I also need…”).",
				"Use check-ins to ask Shift Supervisors, “How are you doing, and what do you need from me to be successful?”",
				"Schedule short relational touchpoints with YDPs on tough weeks, even if it’s just a 2-minute hallway check-in.",
			}},
			{Prompt: true, Items: []string{
				"Where am I avoiding direct feedback because I’m worried about how someone will feel?",
				"How can I show care and still hold a strong boundary in my next difficult conversation?",
				"What helps me stay connected to my team when I also have to say hard things?",
			}},
		},
	},
	{models.TraitDirector, models.TraitAchievement}: {
		Label:   "Director + Achievement",
		Summary: "You’re results-focused and decisive. You want to see tangible improvements in safety, documentation, routines, and outcomes, and you’re willing to take charge to get there.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You’re likely to set clear goals and follow up consistently.",
				"You help staff understand what success looks like in a very practical way.",
				"Youth benefit from your commitment to structure and follow-through.",
				"Leadership can count on you to move key metrics in the right direction when you have the tools you need.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You may accidentally treat complex, trauma-driven behavior as a problem to solve quickly instead of a process to support.",
				"YDPs may feel like they’re under a microscope if the focus on goals isn’t balanced with support.",
				"You might judge yourself harshly when progress is slower than you’d like.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Partner with clinicians to define realistic pacing for youth progress and staff learning.",
				"Set process goals (e.g., “We’ll debrief every major incident”) not just outcome goals (e.g., “Fewer incidents”).",
				"Regularly celebrate incremental gains with your team so the work doesn’t feel like endless pressure.",
			}},
			{Prompt: true, Items: []string{
				"Which of my goals are fully in my control, and which depend on systems beyond me?",
				"What does “realistic progress” look like for my team and youth this month?",
				"How can I make sure my drive for results feels supportive, not punitive, to my staff?",
			}},
		},
	},
	{models.TraitEncourager, models.TraitGrowth}: {
		Label:   "Encourager + Growth",
		Summary: "You love helping people grow. You bring energy, hope, and a belief that staff and youth can change, and you want to keep learning how to support that change.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You’re a natural mentor for newer YDPs who need encouragement and feedback.",
				"Youth feel your belief in them, which can be deeply regulating in a clinical environment.",
				"Shift Supervisors experience you as someone who invests in their development.",
				"You’re often up for learning new trauma-informed practices and trying them on the floor.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You may overcommit your time and emotional energy when many people need you.",
				"You might avoid giving sharper feedback because you don’t want to discourage someone.",
				"You can feel deeply discouraged when youth or staff don’t “take up” the growth you see for them.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Choose a small number of people to invest in deeply at any given time, so you don’t spread yourself too thin.",
				"Pair encouragement with one specific growth target in coaching conversations.",
				"Ask your supervisor for clear expectations so your growth efforts stay focused.",
			}},
			{Prompt: true, Items: []string{
				"Who am I pouring most of my energy into right now, and is that sustainable?",
				"How can I name growth honestly without minimizing ongoing challenges?",
				"What helps me keep believing in people without taking responsibility for their choices?",
			}},
		},
	},
	{models.TraitEncourager, models.TraitPurpose}: {
		Label:   "Encourager + Purpose",
		Summary: "You are fueled by connection and meaning. You want youth and staff to feel valued, respected, and aligned with Elmcrest’s mission.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You keep the “why” of the work alive when others are exhausted.",
				"You often catch when staff or youth feel unseen or unheard and make space for them.",
				"You can help translate clinical language into human, mission-centered terms.",
				"Shift Supervisors may feel safe bringing value conflicts or moral distress to you.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You can carry a lot of emotional weight when the system doesn’t reflect your values.",
				"You may struggle to enforce consequences when you empathize strongly with someone’s story.",
				"You can be heartbroken by youth outcomes in ways that are hard to talk about.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Schedule regular debriefs with your supervisor or a trusted peer to process emotional load.",
				"Use values-based language when holding accountability (“Because safety matters, we have to…”).",
				"When you see misalignment with values, bring it forward as curiosity, not accusation.",
			}},
			{Prompt: true, Items: []string{
				"Where do I feel my values most honored in this role?",
				"Where do I need more support to stay aligned with what I believe is right?",
				"What practices help me refill my emotional cup so I can keep showing up with heart?",
			}},
		},
	},
	{models.TraitEncourager, models.TraitConnection}: {
		Label:   "Encourager + Connection",
		Summary: "You are a community builder. You thrive on strong relationships, shared energy, and a sense of “we’re in this together.”",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You make staff feel less alone in hard work.",
				"You help youth experience adults as approachable, kind, and on their side.",
				"Shift Supervisors often see you as someone who can bring the team together after conflict.",
				"You naturally create a sense of belonging in meetings and huddles.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You may avoid addressing harmful behavior (youth or staff) because you fear losing connection.",
				"You can take interpersonal tension very personally.",
				"In a highly clinical setting, you might sometimes prioritize harmony over necessary change.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Practice scripts that connect and correct at the same time (“I care about you and I need to be honest about…”).",
				"Ask a colleague or supervisor to help you plan for especially hard conversations in advance.",
				"Remember that drawing boundaries is a form of care, especially in trauma-informed environments.",
			}},
			{Prompt: true, Items: []string{
				"Where am I holding back hard feedback to keep the peace?",
				"How can I protect connection while being truthful about what needs to change?",
				"What does healthy conflict look like in my team when it’s done well?",
			}},
		},
	},
	{models.TraitEncourager, models.TraitAchievement}: {
		Label:   "Encourager + Achievement",
		Summary: "You want people to feel good and do well. You’re motivated when your encouragement translates into real, visible progress.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You celebrate wins in ways that boost morale.",
				"You’re often the one who notices and names growth in youth or staff.",
				"You can make goals feel inspiring instead of threatening.",
				"Shift Supervisors may feel energized to try new strategies because you believe they can succeed.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You might push too hard on people’s “potential” when they’re actually at capacity.",
				"You can feel personally disappointed when goals aren’t met, as if you failed them.",
				"You may focus on “big wins” and forget to honor slow, quiet, clinical progress.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Work with clinicians to define what realistic progress looks like for particular youth or staff.",
				"Build in micro-celebrations for small steps, not just end results.",
				"Name effort and process, not only outcomes, when you encourage.",
			}},
			{Prompt: true, Items: []string{
				"Whose progress am I most excited about right now, and is my excitement matched by their readiness?",
				"Where do I need to lower the bar to something that is still meaningful but more realistic?",
				"How can I stay hopeful without tying my worth to other people’s outcomes?",
			}},
		},
	},
	{models.TraitFacilitator, models.TraitGrowth}: {
		Label:   "Facilitator + Growth",
		Summary: "You create calm space and you want that space to help people grow. You’re patient, reflective, and interested in helping staff and youth develop over time.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You’re excellent at reflective supervision with Shift Supervisors and YDPs.",
				"Youth feel safe enough with you to open up, especially when they’re not ready for intensity.",
				"You are good at pacing change so it’s sustainable.",
				"Clinicians may see you as a strong partner for implementing relational aspects of treatment.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You might avoid setting sharper expectations in the name of being gentle.",
				"You can underestimate how much structure some youth and staff actually need to grow.",
				"You may overthink instead of taking a necessary decisive step.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Practice naming both care and expectations in the same sentence.",
				"Ask your supervisor for clarity on non-negotiables so you feel confident enforcing them.",
				"Break growth steps into very small, concrete actions so they feel manageable.",
			}},
			{Prompt: true, Items: []string{
				"Where am I holding back on naming a needed change, and what’s the cost?",
				"How can I keep my steady, calm presence while being more direct where it’s needed?",
				"What does “kind and firm” look like for me in the next tough conversation?",
			}},
		},
	},
	{models.TraitFacilitator, models.TraitPurpose}: {
		Label:   "Facilitator + Purpose",
		Summary: "You’re a steady presence with a deep sense of what’s right. You care about emotional safety and ethical practice in a very grounded way.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You help maintain a climate where youth and staff feel respected.",
				"You can hold space for hard feelings without quickly fixing or dismissing them.",
				"You support value-based, trauma-informed decisions on the floor.",
				"Shift Supervisors may see you as a moral anchor when things feel messy.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You may quietly carry moral distress without voicing it.",
				"You might stay neutral too long when a strong stance is needed.",
				"You can feel stuck when leadership decisions don’t align with your internal compass.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Use supervision to talk explicitly about moral tension and values.",
				"When something feels “off,” bring it forward gently but clearly.",
				"Remember that calmly naming a concern is often a powerful leadership act.",
			}},
			{Prompt: true, Items: []string{
				"Where do my values feel well-supported here?",
				"What is one value-based concern I’ve been holding onto silently?",
				"What is one brave but respectful sentence I could say about it?",
			}},
		},
	},
	{models.TraitFacilitator, models.TraitConnection}: {
		Label:   "Facilitator + Connection",
		Summary: "You are the calm, relational glue. You make it easier for people to stay in the work and not shut down or blow up.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You help YDPs feel understood when they’re overwhelmed.",
				"You de-escalate youth by staying steady and non-threatening.",
				"You foster a climate where it’s okay to ask for help.",
				"Shift Supervisors may lean on you as a quiet stabilizer.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You may quietly absorb emotional labor without recognition.",
				"You can struggle to set limits with staff who repeatedly underperform.",
				"You may stay in listening mode when a clear decision is needed.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Ask your supervisor to help you script accountability conversations that still feel kind.",
				"Set boundaries on when and how staff can bring you emotional processing, so you don’t burn out.",
				"Name your stabilizing role in the team as real leadership, not “just being nice.”",
			}},
			{Prompt: true, Items: []string{
				"Where am I saying yes emotionally when I’m actually at capacity?",
				"What boundaries would make my calm presence more sustainable?",
				"How can I bring my quiet influence more into decision-making spaces?",
			}},
		},
	},
	{models.TraitFacilitator, models.TraitAchievement}: {
		Label:   "Facilitator + Achievement",
		Summary: "You’re steady and gentle, and you also care about getting things done. You want progress, but you don’t want to crush people in the process.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You pace goals realistically and sensitively.",
				"You help staff understand that improvement is a journey, not a flip of a switch.",
				"Youth benefit from your patience as they make uneven progress.",
				"You can bring a calm, structured approach to moving key metrics.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You might apologize for pushing on important expectations.",
				"You may quietly carry frustration when others aren’t following through.",
				"You can under-communicate your own desire for stronger performance.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Practice saying, “I care about you, and this expectation is really important for youth safety.”",
				"Use very clear, simple follow-ups so people know you mean it when you set a goal.",
				"Ask for feedback on how you’re balancing kindness and accountability.",
			}},
			{Prompt: true, Items: []string{
				"Where do I wish I was holding a firmer line?",
				"What would it look like to increase clarity without increasing harshness?",
				"How can I honor small progress while still calling people to more?",
			}},
		},
	},
	{models.TraitTracker, models.TraitGrowth}: {
		Label:   "Tracker + Growth",
		Summary: "You love accurate information and steady improvement. You want systems, documentation, and practice to keep getting better.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You notice patterns in incidents and help the team learn from them.",
				"You keep clinical documentation tight, which supports good treatment.",
				"Shift Supervisors know you will help them improve their processes, not just criticize them.",
				"Clinicians appreciate your attention to detail in implementing plans.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You may get frustrated when others don’t seem to care about details as much as you do.",
				"You can over-focus on refining systems at the expense of relationships.",
				"In fast-moving crises, you might hesitate while you think through the “right” response.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Pick a few key processes to improve each quarter instead of tackling everything at once.",
				"Pair each process change with one relational or team-building action.",
				"Ask your supervisor or a trusted peer to push you gently toward action when you’re overthinking.",
			}},
			{Prompt: true, Items: []string{
				"What is the smallest meaningful system improvement I can make right now?",
				"Where could I simplify instead of adding more steps?",
				"How can I invite staff into co-owning improvements so it’s not just me pushing quality?",
			}},
		},
	},
	{models.TraitTracker, models.TraitPurpose}: {
		Label:   "Tracker + Purpose",
		Summary: "You want things done right because you believe it matters for kids and staff. Your standards come from a deep sense of responsibility.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You protect youth and staff by ensuring documentation and procedures support ethical, safe care.",
				"You are often the one who notices when something small could become a big risk.",
				"You can translate values like safety and dignity into very concrete practices.",
				"Leaders and clinicians can rely on you for honest, accurate information.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You may feel intolerant of what looks like carelessness in others.",
				"You can feel personally distressed when policies or shortcuts seem to risk harm.",
				"You may lean on rules when you’re actually feeling morally anxious or upset.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Use supervision to process where your sense of responsibility feels heavy.",
				"Share the value-based “why” behind your standards with staff, not just the rule itself.",
				"Ask when it’s okay to relax certain expectations in low-risk situations to protect your own capacity.",
			}},
			{Prompt: true, Items: []string{
				"Where am I holding responsibility that’s too heavy to carry alone?",
				"How can I turn my sense of duty into coaching instead of criticism?",
				"What helps me stay compassionate when others don’t meet the bar?",
			}},
		},
	},
	{models.TraitTracker, models.TraitConnection}: {
		Label:   "Tracker + Connection",
		Summary: "You care about getting it right, and you care about people. You want a team that is both competent and cohesive.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You can give very grounded, specific support to staff—“here’s exactly what to do and why.”",
				"Youth experience your consistency as a kind of safety, especially when they know you’ll do what you say.",
				"Shift Supervisors may feel safe asking you technical questions because you won’t judge them for not knowing.",
				"Your blend of detail and care can make complex clinical expectations feel more manageable.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You may assume that people know you care even when you’re sounding only technical.",
				"You can become the “go-to” person for everything and slowly burn out.",
				"You might feel caught between your desire for connection and your frustration when others don’t follow through.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Add a brief relational check-in before jumping into details (“How are you holding up today?”).",
				"Share tasks and expertise with Shift Supervisors instead of quietly doing things for them.",
				"Ask your supervisor to help you prioritize what truly needs perfection and what can be “good enough.”",
			}},
			{Prompt: true, Items: []string{
				"Where could I let someone else try and learn, even if it’s not perfect?",
				"How can I show that I see and appreciate people, not just their performance?",
				"What boundaries do I need around being the “dependable one” so I don’t burn out?",
			}},
		},
	},
	{models.TraitTracker, models.TraitAchievement}: {
		Label:   "Tracker + Achievement",
		Summary: "You want strong results and you believe the path there is good systems and accurate work. You’re motivated by making things run better and seeing that reflected in the numbers.",
		Lists: []List{
			{Heading: crossStrengthsHeading, Items: []string{
				"You’re strong at tracking incidents, documentation, and key metrics and helping the team adjust based on data.",
				"Shift Supervisors have a clear sense of what “good” looks like when they work with you.",
				"Youth benefit from your insistence on consistent routines and follow-through.",
				"Leadership and clinicians trust your reports and rely on them for decision-making.",
			}},
			{Heading: crossWatchOutsHeading, Items: []string{
				"You may feel impatient with staff who struggle to meet your standards.",
				"You can focus so much on accurate reporting that you under-communicate empathy.",
				"You might tie your own sense of success too tightly to whether numbers improve quickly enough.",
			}},
			{Heading: crossSupportHeading, Items: []string{
				"Pair data shares with appreciation (“Here’s what improved, here’s who helped make that happen.”).",
				"Check in with staff about what support they need to meet expectations before tightening accountability.",
				"Ask your supervisor to help you contextualize metrics so you don’t carry them as a personal verdict.",
			}},
			{Prompt: true, Items: []string{
				"Where can I celebrate progress more, even if we’re not at our target yet?",
				"What support might staff be missing that I’m assuming they already have?",
				"How can I remember that the numbers are information, not my identity?",
			}},
		},
	},
}
