package summary

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/video-notes/internal/aiclient"
)

const chunkSystemPrompt = `You are an expert at creating concise, well-structured summaries.

FORMATTING REQUIREMENTS:
- Always use bullet points to organize information
- Use **bold** for key terms, concepts, and important names
- Keep each bullet point to 1-2 lines maximum
- Start each summary with 3-5 main bullet points
- Prioritize actionable insights and concrete information
- Avoid lengthy paragraphs - break content into digestible points
- Use clear, direct language without unnecessary words
- Output valid markdown`

const chunkUserTemplate = `This is section %d of a longer transcript.

Extract and summarize the most important information. Focus on:
- Key concepts and main ideas
- Important facts, data points, or statistics
- Actionable insights or practical takeaways
- Notable quotes or examples

Content to summarize:
%s`

const combineSystemPrompt = `You are an expert at synthesizing information from multiple sources into cohesive, comprehensive summaries. Always use proper markdown formatting including headers, bullet points, **bold** for emphasis, and *italic* for additional emphasis. Focus on creating a logical narrative flow.`

const combineUserIntro = `You have been given a series of summaries from a long video transcript. Your task is to synthesize them into a single, cohesive, and well-structured summary.

Focus on creating a final output that:
- **Integrates Key Themes**: Identify and merge the main ideas, concepts, and narratives from all summaries.
- **Maintains Logical Flow**: Organize the content in a clear, logical order.
- **Eliminates Redundancy**: Remove duplicate information and consolidate related points.
- **Preserves Critical Information**: Ensure that essential facts, data, and takeaways are retained.`

// chunkMessages builds the prompt for summarizing one chunk.
// sectionNumber is 1-based for readability in the prompt.
func chunkMessages(content string, sectionNumber int) []aiclient.Message {
	return []aiclient.Message{
		{Role: aiclient.RoleSystem, Content: chunkSystemPrompt},
		{Role: aiclient.RoleUser, Content: fmt.Sprintf(chunkUserTemplate, sectionNumber, content)},
	}
}

// combineMessages builds the synthesis prompt, embedding each chunk
// summary under a numbered section heading.
func combineMessages(summaries []string) []aiclient.Message {
	var sb strings.Builder
	sb.WriteString(combineUserIntro)
	sb.WriteString("\n\nHere are the summaries:\n")
	for i, s := range summaries {
		fmt.Fprintf(&sb, "\n## Section %d\n%s\n", i+1, s)
	}

	return []aiclient.Message{
		{Role: aiclient.RoleSystem, Content: combineSystemPrompt},
		{Role: aiclient.RoleUser, Content: sb.String()},
	}
}
