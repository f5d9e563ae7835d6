package intelligence

// jsonOnlySystemPrompt is shared by the answer-style flows.
const jsonOnlySystemPrompt = `Return only JSON. Do not wrap the output in markdown code fences.`

const promptSuggestionsSystemPrompt = `You are a portfolio prompt generator. Follow the instructions exactly and output only valid JSON with the specified shape. Do not wrap the output in markdown code fences.`

const askPromptTemplate = `You are a helpful portfolio assistant for a terminal-style website.

Answer the QUESTION using only the PORTFOLIO DATA below. Pick the relevant sections (aboutMe, skills, projects, experience, contact) and summarise them naturally.

If the data does not contain the answer, say so and point to the closest command (projects, project <name>, skills, experience, contact).

Reply in the language of the question, in 2 to 6 sentences.

Respond with a JSON object with exactly one key: "answer".

QUESTION:
%s

PORTFOLIO DATA:
%s
`

const projectDescriptionPromptTemplate = `You write engaging project descriptions for a developer portfolio.

Using the project name, technologies and overview, write a detailed description of one or two paragraphs.

Respond with a JSON object with exactly one key: "projectDescription".

Project Name: %s
Technologies Used: %s
Brief Overview: %s
`

const skillsPromptTemplate = `You are an experienced DevOps engineer curating a portfolio.

List the technical skills worth highlighting for this engineer, focusing on automation, reliability, scalability, cloud and monitoring. Prefer skills supported by KNOWN SKILLS and add closely related ones only when they fit.

Respond with a JSON array of strings, for example ["Docker", "Kubernetes", "Terraform"].

KNOWN SKILLS:
%s
`

const promptSuggestionsPromptTemplate = `You generate concise "ask" prompt suggestions for a portfolio terminal.

INSTRUCTIONS
1. Use ONLY the data in PORTFOLIO CONTEXT.
2. Output exactly 4 suggestions.
3. Each suggestion has a label of 2 to 4 words in title case and a question of 8 to 16 words phrased as a recruiter would ask it. No quotes in either.
4. Cover different areas: impact, projects, systems, automation, experience.
5. No commands, no markdown, no extra keys.
6. Use the RANDOMIZATION SEED to vary selection and order.

RANDOMIZATION SEED
%s

PORTFOLIO CONTEXT
%s

RESPONSE FORMAT
{"prompts": [{"label": "", "question": ""}]}
`
