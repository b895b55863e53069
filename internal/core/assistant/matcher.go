// Package assistant is the scripted design assistant behind the creator chat.
package assistant

import "strings"

// Greeting opens every new transcript
const Greeting = "Hi! I'm your AI sustainability assistant. I can help you design eco-friendly products, suggest materials, optimize for recyclability, and more. What would you like to create today?"

const (
	bottleReply = "Great! For a sustainable water bottle, I recommend using rPET (recycled PET plastic) for the main body. Here's what I suggest:\n\n• Material: 85% rPET, 10% stainless steel cap, 5% silicone seal\n• Capacity: 500ml (optimal for daily use)\n• Dimensions: H: 220mm, W: 70mm\n• Wall thickness: 2.5mm for durability\n• Eco-score potential: A (95% recyclable)\n\nWould you like me to generate design mockups?"

	containerReply = "Perfect choice! For food containers, I recommend biodegradable materials:\n\n• Primary material: 60% bamboo fiber\n• Secondary: 35% corn starch polymer\n• Seal: 5% natural rubber\n• Capacity: 750ml\n• Temperature range: -20°C to 120°C\n• Dishwasher safe, microwave safe\n• Eco-score: A (98% recyclable/compostable)\n\nThis design can reduce plastic waste by 95% compared to traditional containers."

	cupReply = "Excellent! For a reusable coffee cup, here's my recommendation:\n\n• Material: 80% stainless steel 304 (double-wall insulated)\n• Lid: 15% PP plastic (BPA-free)\n• Grip: 5% silicone\n• Capacity: 350ml\n• Insulation: Keeps hot for 6h, cold for 12h\n• Eco-score: B (85% recyclable)\n• Replaces ~500 disposable cups/year\n\nWould you like to adjust the capacity or materials?"

	genericReply = "I understand you're interested in creating a sustainable product. Could you tell me more about:\n\n1. What type of product? (bottle, container, cup, packaging)\n2. Primary use case?\n3. Target capacity/size?\n4. Any specific sustainability goals?\n\nThis will help me provide tailored recommendations for materials, dimensions, and eco-optimization."
)

// Dimensions in millimetres
type Dimensions struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
}

// Suggestion is a structured design proposal that can be applied to a draft
type Suggestion struct {
	Materials  []string   `json:"materials"`
	Capacity   int        `json:"capacity"`
	Dimensions Dimensions `json:"dimensions"`
	EcoScore   string     `json:"eco_score"`
}

// Reply is the assistant's answer to one user message
type Reply struct {
	Content    string      `json:"content"`
	Suggestion *Suggestion `json:"suggestion,omitempty"`
}

type rule struct {
	keywords []string
	content  string
	suggest  func() *Suggestion
}

// Checked in order, first match wins.
var rules = []rule{
	{keywords: []string{"bottle", "water"}, content: bottleReply, suggest: bottleSuggestion},
	{keywords: []string{"container", "food"}, content: containerReply},
	{keywords: []string{"cup", "coffee"}, content: cupReply},
}

func bottleSuggestion() *Suggestion {
	return &Suggestion{
		Materials:  []string{"rPET", "Tritan", "Stainless Steel"},
		Capacity:   500,
		Dimensions: Dimensions{Height: 220, Width: 70, Depth: 70},
		EcoScore:   "A",
	}
}

// Respond picks the canned reply for a message. It never fails; input with
// no known keyword gets the clarifying question and no suggestion.
func Respond(input string) Reply {
	lower := strings.ToLower(input)
	for _, r := range rules {
		if !containsAny(lower, r.keywords) {
			continue
		}
		reply := Reply{Content: r.content}
		if r.suggest != nil {
			reply.Suggestion = r.suggest()
		}
		return reply
	}
	return Reply{Content: genericReply}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
