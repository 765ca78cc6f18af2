package validation

const partJSON = `{
	"labels": [
		["Choose a subject first", "Choose a title first", "Choose an answer type first", "Set a task count first"],
		["Title", "Answer type", "Task count", "Total difficulty"]
	],
	"titles": {
		"available": {"1": "Part A", "3": "Part C", "10": "Part J"},
		"reserved": {"2": "Part B"}
	},
	"amount": 10,
	"capacities": {"short": 4, "long": 1},
	"difficulties": {"1": "Easy", "3": "Hard", "2": "Medium"}
}`

const taskJSON = `{"labels": ["Choose a part first", "Position"], "amount_min": 1, "amount_max": 12}`
