package prompts

import (
	"fmt"
	"strings"

	"serviceia/internal/models"
)

// ===== Call Analysis Prompts =====

// CallSummarySystemPrompt builds the system prompt for call transcript analysis
func CallSummarySystemPrompt() string {
	return `Tu es un assistant specialise dans l'analyse de transcriptions
d'appels telephoniques pour des cabinets d'avocats francais.

Analyse la transcription et extrais:
1. Un resume concis (2-3 phrases)
2. Les faits cles mentionnes
3. Le domaine juridique concerne
4. Le niveau d'urgence (LOW, NORMAL, HIGH, CRITICAL)
5. Un score de lead (0-100)
6. Si c'est une urgence (violence, danger immediat)
7. Les donnees structurees (nom, telephone, email, description du probleme)

Reponds uniquement en JSON, sans texte autour, avec ce format:
{
  "summary": "resume",
  "key_facts": ["fait 1", "fait 2"],
  "practice_area": "domaine juridique ou null",
  "urgency_level": "LOW | NORMAL | HIGH | CRITICAL",
  "lead_score": 0,
  "is_emergency": false,
  "emergency_type": "type d'urgence ou null",
  "extracted_data": {"name": "", "phone": "", "email": "", "issue_description": ""}
}`
}

// CallSummaryUserPrompt builds the user message carrying the transcript
func CallSummaryUserPrompt(transcript string, practiceArea string) string {
	return fmt.Sprintf("Domaine juridique suppose: %s\n\nTranscription:\n%s", practiceArea, transcript)
}

// LeadScoreSystemPrompt builds the system prompt for lead scoring
func LeadScoreSystemPrompt() string {
	return `Tu es un assistant qui evalue le potentiel commercial d'un appel entrant
pour un cabinet d'avocats francais.

Attribue un score de lead entre 0 et 100 en tenant compte de:
- la clarte et la solidite juridique du dossier
- l'adequation avec le domaine juridique du cabinet
- l'urgence et la motivation du prospect
- la capacite apparente du prospect a engager le cabinet

Reponds uniquement en JSON, sans texte autour, avec ce format:
{"score": 0, "factors": ["facteur 1", "facteur 2"]}`
}

// LeadScoreUserPrompt builds the user message for lead scoring
func LeadScoreUserPrompt(transcript string, practiceArea string) string {
	return fmt.Sprintf("Domaine juridique du cabinet: %s\n\nTranscription:\n%s", practiceArea, transcript)
}

// ===== RAG Prompts =====

// RAGAnswerSystemPrompt builds the system prompt for knowledge base answers
func RAGAnswerSystemPrompt() string {
	return `Tu es l'assistant documentaire d'un cabinet d'avocats francais.
Reponds a la question uniquement a partir des extraits fournis.
Si les extraits ne permettent pas de repondre, dis-le clairement.
Cite les extraits utilises par leur numero entre crochets, par exemple [1].
Reponds en francais, de maniere concise.`
}

// RAGAnswerUserPrompt builds the user message with numbered passages
func RAGAnswerUserPrompt(query string, passages []models.RAGPassage) string {
	var b strings.Builder
	b.WriteString("Extraits de la base de connaissances:\n")
	for i, p := range passages {
		title := p.Title
		if title == "" {
			title = p.DocumentID
		}
		fmt.Fprintf(&b, "\n[%d] %s\n%s\n", i+1, title, strings.TrimSpace(p.Content))
	}
	fmt.Fprintf(&b, "\nQuestion:\n%s", query)
	return b.String()
}

// RAGNoResultsAnswer is returned when retrieval finds nothing to ground an answer on
const RAGNoResultsAnswer = "Aucune information pertinente n'a ete trouvee dans la base de connaissances du cabinet."
