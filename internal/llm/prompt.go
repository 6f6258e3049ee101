package llm

// BuildOCRPrompt composes the page-extraction instruction. The model must
// answer with bare JSON: downstream recovery tolerates fences and prose, but
// asking for none keeps the happy path cheap.
func BuildOCRPrompt() string {
	return "You are an OCR and information extraction engine. " +
		"Read the document image and return a SINGLE valid JSON object only. " +
		"Do NOT include markdown code fences or any commentary. " +
		"If there are multiple sections or pages, merge them into a single JSON object. " +
		"Preserve all numbers/IDs as strings. Use arrays for lists and tables. " +
		"If a field is unreadable, use null. Keys should be concise and snake_case."
}

// BuildFallbackPrompt is the shorter instruction used on a retry after a
// deadline-style failure, paired with a smaller output token budget.
func BuildFallbackPrompt() string {
	return "Return ONLY a valid JSON object representing all readable text and fields. " +
		"No markdown, no explanations."
}
