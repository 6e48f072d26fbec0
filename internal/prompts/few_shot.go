package prompts

import "fmt"

// Template names reported in technique response metadata.
const (
	TemplateSentimentClassification = "SENTIMENT_CLASSIFICATION"
	TemplateMathWordProblems        = "MATH_WORD_PROBLEMS"
	TemplateNamedEntityRecognition  = "NAMED_ENTITY_RECOGNITION"
	TemplateTextClassification      = "TEXT_CLASSIFICATION"
)

const sentimentClassificationTemplate = `Here are some examples of sentiment classification:

Example 1:
Input: "I love this product! It's amazing and works perfectly."
Output: positive
Explanation: The text contains positive words like 'love', 'amazing', and 'perfectly'.

Example 2:
Input: "This is terrible. I hate it and want my money back."
Output: negative
Explanation: The text contains negative words like 'terrible', 'hate', and expresses dissatisfaction.

Example 3:
Input: "The weather is okay today. Nothing special."
Output: neutral
Explanation: The text is neither particularly positive nor negative, using neutral language.

Now, please classify the sentiment of this text: "%s"
Output:`

const mathWordProblemsTemplate = `Here are some examples of solving math word problems:

Example 1:
Input: "Sarah has 15 apples. She gives 7 to her friend. How many apples does she have left?"
Output: 8 apples
Explanation: Sarah starts with 15 apples. She gives away 7 apples. 15 - 7 = 8 apples remaining.

Example 2:
Input: "A rectangle has a length of 8 meters and width of 5 meters. What is its area?"
Output: 40 square meters
Explanation: Area of rectangle = length × width. Area = 8 × 5 = 40 square meters.

Example 3:
Input: "If a car travels 60 miles per hour for 3 hours, how far does it travel?"
Output: 180 miles
Explanation: Distance = speed × time. Distance = 60 mph × 3 hours = 180 miles.

Now, please solve this math problem: "%s"
Output:`

const namedEntityRecognitionTemplate = `Here are some examples of named entity recognition:

Example 1:
Input: "John Smith works at Google in Mountain View, California."
Output: PERSON: John Smith | ORGANIZATION: Google | LOCATION: Mountain View, California

Example 2:
Input: "Apple Inc. was founded by Steve Jobs on April 1, 1976."
Output: ORGANIZATION: Apple Inc. | PERSON: Steve Jobs | DATE: April 1, 1976

Example 3:
Input: "The meeting is scheduled for tomorrow at 3 PM in New York."
Output: TIME: tomorrow at 3 PM | LOCATION: New York

Now, please extract entities from this text: "%s"
Output:`

const textClassificationTemplate = `Here are some examples of text classification:

Example 1:
Input: "How do I reset my password?"
Output: technical_support
Explanation: User is asking for help with a technical issue.

Example 2:
Input: "I want to cancel my subscription and get a refund."
Output: billing_inquiry
Explanation: User is asking about billing and subscription matters.

Example 3:
Input: "Your service is excellent! Keep up the good work."
Output: feedback_positive
Explanation: User is providing positive feedback about the service.

Now, please classify this text: "%s"
Output:`

// SentimentClassification renders the few-shot sentiment analysis prompt.
func SentimentClassification(text string) string {
	return fmt.Sprintf(sentimentClassificationTemplate, text)
}

// MathWordProblems renders the few-shot math word problem prompt.
func MathWordProblems(problem string) string {
	return fmt.Sprintf(mathWordProblemsTemplate, problem)
}

// NamedEntityRecognition renders the few-shot entity extraction prompt.
func NamedEntityRecognition(text string) string {
	return fmt.Sprintf(namedEntityRecognitionTemplate, text)
}

// TextClassification renders the few-shot text classification prompt.
func TextClassification(text string) string {
	return fmt.Sprintf(textClassificationTemplate, text)
}
