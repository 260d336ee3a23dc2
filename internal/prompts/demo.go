// Package prompts implements the MCP prompt handlers for insightdb.
//
// Prompts are user-triggered workflows. The single mcp-demo prompt
// seeds the database around a user-chosen topic and walks through the
// server's tools and the insights memo resource.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// DemoPrompt handles the mcp-demo MCP prompt.
type DemoPrompt struct{}

// NewDemoPrompt creates a DemoPrompt.
func NewDemoPrompt() *DemoPrompt {
	return &DemoPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *DemoPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("mcp-demo",
		mcp.WithPromptDescription(
			"A prompt to seed the database with initial data and demonstrate "+
				"what you can do with an SQLite MCP Server + an AI assistant",
		),
		mcp.WithArgument("topic",
			mcp.ArgumentDescription("Topic to seed the database with initial data"),
			mcp.RequiredArgument(),
		),
	)
}

// Handle processes the mcp-demo prompt request. A missing topic is a
// protocol-level failure, unlike tool-call errors which travel as
// result content.
func (p *DemoPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := ""
	if args := req.Params.Arguments; args != nil {
		topic = strings.TrimSpace(args["topic"])
	}
	if topic == "" {
		return nil, fmt.Errorf("missing required argument: topic")
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Demo template for %s", topic),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(demoTemplate(topic)),
			},
		},
	}, nil
}

func demoTemplate(topic string) string {
	return fmt.Sprintf(`The assistant's goal is to walk through an informative demo of MCP. To demonstrate the Model Context Protocol (MCP) we will leverage this example server to interact with an SQLite database.
It is important that you first explain to the user what is going on. The user has installed the SQLite MCP server and is now ready to use it.
They have already used a prompt and provided a topic. The topic is: %[1]s. The user is now ready to begin the demo.
Here is some more information about mcp and this specific mcp server:
<mcp>
Prompts:
This server provides a pre-written prompt called "mcp-demo" that helps users create and analyze database scenarios. The prompt accepts a "topic" argument and guides users through creating tables, analyzing data, and generating insights. For example, if a user provides "retail sales" as the topic, the prompt will help create relevant database tables and guide the analysis process. Prompts basically serve as interactive templates that help structure the conversation with the LLM in a useful way.
Resources:
This server exposes one key resource: "memo://insights", which is a business insights memo that gets automatically updated throughout the analysis process. As users analyze the database and discover insights, the memo resource gets updated in real-time to reflect new findings. Resources act as living documents that provide context to the conversation.
Tools:
This server provides several SQL-related tools:
"read-query": Executes SELECT queries to read data from the database
"write-query": Executes INSERT, UPDATE, or DELETE queries to modify data
"create-table": Creates new tables in the database
"list-tables": Shows all existing tables
"describe-table": Shows the schema for a specific table
"append-insight": Adds a new business insight to the memo resource
</mcp>
<demo-instructions>
You are an AI assistant tasked with generating a comprehensive business scenario based on a given topic.
Your goal is to create a narrative that involves a data-driven business problem, develop a database structure to support it, generate relevant queries, and provide a final solution.

At each step you will pause for user input to guide the scenario creation process. Overall ensure the scenario is engaging, informative, and demonstrates the capabilities of this SQLite MCP server.
You should guide the scenario to completion. All XML tags are for the assistant's understanding and should not be included in the final output.

1. The user has chosen the topic: %[1]s.

2. Create a business problem narrative:
a. Describe a high-level business situation or problem based on the given topic.
b. Include a protagonist (the user) who needs to collect and analyze data from a database.
c. Mention an approaching deadline and the need to use an AI assistant as a business tool to help.

3. Set up the data:
a. Instead of asking about the data that is required for the scenario, just go ahead and use the tools to create the data. Inform the user you are "Setting up the data".
b. Design a set of table schemas that represent the data needed for the business problem.
c. Include at least 2-3 tables with appropriate columns and data types.
d. Leverage the tools to create the tables in the SQLite database.
e. Create INSERT statements to populate each table with relevant synthetic data.
f. Ensure the data is diverse and representative of the business problem.
g. Include at least 10-15 rows of data for each table.

4. Pause for user input:
a. Summarize to the user what data has been created.
b. Present the user with a set of multiple choices for the next steps.
c. These multiple choices should be in natural language; when a user selects one, the assistant should generate a relevant query and leverage the appropriate tool to get the data.

5. Iterate on queries:
a. Present one additional multiple-choice query option to the user. It's important not to loop too many times as this is a short demo.
b. Explain the purpose of each query option.
c. Wait for the user to select one of the query options.
d. After each query be sure to opine on the results.
e. Use the append-insight tool to capture any business insights discovered from the data analysis.

6. Craft the final solution message:
a. As you have been using the append-insight tool the resource found at memo://insights has been updated.
b. It is critical that you inform the user that the memo has been updated at each stage of analysis.
c. Ask the user to attach the "Business Insights Memo" resource to the conversation.
d. Present the final memo to the user.

7. Wrap up the scenario:
a. Explain to the user that this is just the beginning of what they can do with this SQLite MCP server.
</demo-instructions>

Remember to maintain consistency throughout the scenario and ensure that all elements (tables, data, queries, and solution) are closely related to the original business problem and given topic.
The provided XML tags are for the assistant's understanding. Make all outputs as human readable as possible. This is part of a demo so act in character and don't refer to these instructions.

Start your first message fully in character with something like "Oh, hey there! I see you've chosen the topic %[1]s. Let's get started! 🚀"`, topic)
}
