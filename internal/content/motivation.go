package content

import "github.com/elmcrest/compass-service/internal/models"

const motivFuelsHeading = "This tends to be fueled by:"

// motivationTraits describes each single motivation driver in depth.
var motivationTraits = map[models.Trait]Block{
	models.TraitGrowth: {
		Label:   "Growth",
		Summary: "As an Elmcrest Program Supervisor, Growth motivation means you’re energized by developing yourself, your Shift Supervisors, your YDPs, and even the youth. You want to keep learning and improving how the program runs.",
		Lists: []List{{
			Heading: motivFuelsHeading,
			Items: []string{
				"Clear development opportunities for you and your direct reports (trainings, new responsibilities, leading initiatives).",
				"Regular feedback from your supervisor that helps you refine how you lead staff and support youth.",
				"Stretch assignments that let you test new approaches on the floor in a supported way, not sink-or-swim.",
			},
		}},
	},
	models.TraitPurpose: {
		Label:   "Purpose",
		Summary: "As an Elmcrest Program Supervisor, Purpose motivation means you are deeply driven by what is right for kids and families. You care that policies, routines, and decisions reflect Elmcrest’s values, not just compliance.",
		Lists: []List{{
			Heading: motivFuelsHeading,
			Items: []string{
				"Seeing a clear connection between your daily decisions and the safety, dignity, and growth of youth.",
				"Honest conversations with your supervisor about ethical tensions, trade-offs, and systemic barriers.",
				"Being involved in shaping practices or initiatives that make care more trauma-informed, equitable, or humane.",
			},
		}},
	},
	models.TraitConnection: {
		Label:   "Connection",
		Summary: "As an Elmcrest Program Supervisor, Connection motivation means you do your best work when relationships are strong. You care about the climate among Shift Supervisors, YDPs, and youth—and you feel disruptions to that climate deeply.",
		Lists: []List{{
			Heading: motivFuelsHeading,
			Items: []string{
				"Regular, relational check-ins with your supervisor, not just task updates.",
				"Time and space to build trust with Shift Supervisors and YDPs so you’re not only interacting around crises.",
				"Team moments that reinforce “we’re in this together,” like huddles, debriefs, and shared celebrations.",
			},
		}},
	},
	models.TraitAchievement: {
		Label:   "Achievement",
		Summary: "As an Elmcrest Program Supervisor, Achievement motivation means you are energized by clear goals and visible progress—fewer incidents, better documentation, improved routines, and stronger outcomes for youth and staff.",
		Lists: []List{{
			Heading: motivFuelsHeading,
			Items: []string{
				"Specific, realistic targets around coverage, documentation, incidents, or youth goals, with a clear ‘why’ behind them.",
				"Data or simple tracking tools that show progress over time at the unit or program level.",
				"Recognition from leadership when you and your team hit important milestones, not just attention when something goes wrong.",
			},
		}},
	},
}
