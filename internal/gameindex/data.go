package gameindex

// gameData is the static game-mode encyclopedia, grouped by category. Inner
// keys are lowercased lookup keys; descriptions are the rich text shown to
// users.
var gameData = map[string]map[string]string{
	"Survival": {
		"pizzeria survival": "## __Pizzeria Survival__\n" +
			"Pizzeria survival revolves around you surviving against a plethora of different monsters roaming around a pizzeria. Different monsters do different things so make sure to pay attention when they are explained.",
		"hide and seek": "## __Hide and Seek__\n" +
			"In hide and seek a monster roams around the area, your goal is to not get spotted to move on to the next round, or win. If you are spotted once you are most likely guaranteed to die.",
		"cooking": "## __Cooking__\n" +
			"Your goal is to survive as many rounds as possible; you will work with your fellow chefs to make it through said rounds. But it won't be so easy, there are monsters outside trying to stop your progress. They range from customers to the health inspector. Try to keep the floors clean and have good teamwork, you may be docked points for doing otherwise. You have 2 lives before its over.",
		"ghost hunting": "## __Ghost Hunting__\n" +
			"You are trapped in a facility with your peers, it doesn't matter if they die, all that matters is that *you* survive. Your goal is to capture as much paranormal activity as possible on your body \"camera\". This can range from a tray floating, random sounds, or the ghost itself, though it is recommended that you avoid seeing the ghost, those that do usually never live to tell the tale.",
	},
	"Social Deduction": {
		"locate the spy": "## __Locate the Spy__\n" +
			"You and your peers are thrown into an abandoned facility with a catch, some of you are spies, or worse. Use the role you are assigned to either survive on your own, help everyone, or sabotage those around you. But make sure to leave in time before the core reactor explodes. If a spy is let on at the end, everyone loses and the spies win. Though, there may be others with different plans in mind.",
		"doppelgangers": "## __Doppelgangers__\n" +
			"Everyone is thrown into a facility where you need to get checked out by guards, your goal is to be let in the facility without getting gassed. 2-3 players will be assigned to be a guard and your goal is to let the citizens in, but keep the doppelgangers out.",
		"guessing game": "## __Guessing Game__\n" +
			"The host will think of a prompt, your goal is to guess what it is in 10-15 questions. The questions *have* to be yes or no questions, the host will not respond otherwise, and if you repeatedly mess up you die. Once the questions are used up, the host will call on someone random, they can discuss what they think with their peers but if you get it wrong, you die.",
		"property listing": "## __Property Listing__\n" +
			"The opposite of guessing game, you will be given a prompt and then you and your peers must come up with descriptors for said prompt. The more niche it is, the more points you get. But if you have to *really* stretch it to make it work, you get less points. capping out at 20. The person with the least points at the end of each round dies.",
	},
	"Arcade": {
		"city rushdown": "## __City Rushdown__\n" +
			"The game takes place in a huge and booming city, except you are stuck on a platform. Your goal is to not die from electrocution, if the purple electricity happens to get passed to you, pass it to others by colliding with their bounding box.",
		"hook chasers": "## __Hook Chasers__\n" +
			"Hook Chasers is all about aerial tag, everyone except one random person every round. The tagger's goal is to tag everyone, runners get points for time alive, the person with the least amount of points every round dies.",
		"karts": "## __Karts__\n" +
			"You and your peers are placed onto a racetrack, your goal is to not be in one of the last 2 positions when you finish, if you are, you get eliminated from the event. Each track has its own obstacles that you need to avoid ranging from icy floors, to giant pinballs in the sky.",
	},
}
