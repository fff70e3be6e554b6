package gemini

import (
	"fmt"
	"strings"

	"github.com/hearttoheart/backend/internal/heart"
)

func languageName(lang heart.Language) string {
	if lang == heart.LangEN {
		return "English"
	}
	return "Simplified Chinese"
}

func systemInstruction(lang heart.Language, assessmentIndex string) string {
	return fmt.Sprintf(`You are "HeartToHeart" (心连心), a professional, empathetic parenting and educational consultant.
Your audience includes both PARENTS and TEACHERS of children aged 1-18.

**CRITICAL LANGUAGE RULE**:
- **You MUST reply entirely in %s.**
- Do not mix languages unless explaining a term.

**METHODOLOGY & PHILOSOPHY**:
1. **Expert Knowledge**: Integrate insights from **Adlerian Psychology (Positive Discipline)**, **Montessori**, **Carl Jung**, **Jean Piaget**, and **Ben Furman's "Kid's Skills" (Finnish method)**.
2. **Kid's Skills Approach (CRITICAL)**:
   - When a user presents a behavioral problem, **DO NOT just give advice**.
   - **Reframe the problem as a "Skill to be Learned".**
   - Example: Instead of saying "Stop interrupting," suggest the child needs to learn the skill of "Listening" or "Waiting for a turn".
   - Ask the user: "What skill does the child need to learn so they don't need this problem behavior anymore?"

**ASSESSMENT RECOMMENDATIONS (ACTIONABLE LINKS)**:
- We have a library of professional assessments: [%s].
- If a user describes symptoms (e.g., ADHD, Autism, Depression) or asks for a checkup, you MUST recommend the specific test using a **SPECIAL LINK FORMAT**.
- **Format**: [Assessment Title](assessment:ID?age=X&gender=Y&role=Z)
  - **ID**: The exact ID from the list above.
  - **age**: The child's specific age (e.g. "5", "3.5") if the user mentioned it.
  - **gender**: "boy", "girl" if mentioned.
  - **role**: "parent" or "teacher" if known.
- **Example**: "I recommend you try the [Attention Assessment](assessment:attention_snap?age=7&gender=boy&role=teacher)."

Response Format:
- Use clear headers.
- If suggesting a solution, include a specific "Skill to Practice" section.`,
		languageName(lang), assessmentIndex)
}

func reportPrompt(req ReportRequest) string {
	gender := "Student/Child"
	switch req.Profile.Gender {
	case heart.GenderBoy:
		gender = "Boy"
	case heart.GenderGirl:
		gender = "Girl"
	}
	role, location := "Parent", "Home"
	if req.Profile.Role == heart.RoleTeacher {
		role, location = "Teacher", "Classroom/School"
	}

	var answers strings.Builder
	for _, a := range req.Answers {
		fmt.Fprintf(&answers, "- %s: %s\n", a.Question, a.Answer)
	}

	return fmt.Sprintf(`Output STRICTLY in %s.
Role: Senior Child Psychologist & Educational Consultant.
User Role: %s.
Context: %s.

Task: Analyze the %q for a %s old %s.

Assessment Responses:
%s
Please provide a professional, structured report.

Structure:
1. **Evaluation Summary**: Based on the answers, what is the level of concern? (Low/Moderate/High). Be objective but gentle.
2. **Interpretation**: What do these behaviors mean developmentally or psychologically?
3. **Actionable Strategies for a %s**:
   - Provide 3 specific, actionable strategies applicable to the **%s**.
   - **Kid's Skills Integration**: Identify 1 specific "Skill" the child needs to learn to overcome these challenges.
4. **Next Steps**: When to seek professional medical/psychological help?

Tone: Professional, supportive, constructive.`,
		languageName(req.Language), role, location,
		req.AssessmentTitle, req.Profile.ExactAge, gender,
		answers.String(), strings.ToUpper(role), location)
}

func tipPrompt(req TipRequest) string {
	if req.Premium {
		return fmt.Sprintf(`You are an exclusive VIP parenting coach for a premium subscriber.
Context of recent parent activity: %q.

Generate a **Deep, Insightful, and Highly Personalized Tip** (max 50 words).
- Go beyond generic advice. Provide a psychological nugget or a specific "Aha!" moment related to their recent query/activity.
- Tone: Exclusive, warm, sophisticated, and deeply empowering.
- Output language: %s.`, req.Context, languageName(req.Language))
	}
	return fmt.Sprintf(`Based on this context: %q, generate a single, short, inspiring "Daily Tip" (max 35 words).
Draw wisdom from educational experts like Montessori or Adler.
Output language: %s.`, req.Context, languageName(req.Language))
}

func scenarioPrompt(req ScenarioRequest) string {
	role := "Parent"
	if req.Profile.Role == heart.RoleTeacher {
		role = "Teacher"
	}
	return fmt.Sprintf(`Generate a "Positive Discipline" role-play script.
Output Language: %s.

**Scenario Details:**
- **Adult Role**: %s
- **Child Age**: %s
- **Challenge**: %s

**Output Format:**
1. **Typical Negative Reaction**: Dialogue showing negative approach.
2. **Positive Discipline Approach**: Dialogue showing Kind and Firm approach.
3. **Skill Reframing**: One sentence identifying the specific skill (Kid's Skills).`,
		languageName(req.Language), role, req.Profile.ExactAge, req.SolutionTitle)
}

func storyPrompt(req StoryRequest) string {
	return fmt.Sprintf(`Write a short, soothing bedtime story (approx. 200 words) for a %s-year-old child named %q.

**Educational Goal**:
- Learn skill: %q.
- Address behavior: %q.
- Use "Kid's Skills" philosophy.
- **Language**: %s.
- **Tone**: Warm, magical, encouraging.

Structure: Intro, Challenge, Solution, Happy Ending.`,
		req.Age, req.ChildName, req.SkillToLearn, req.IssueToCorrect, languageName(req.Language))
}

// voiceName maps a character voice identifier to a prebuilt TTS voice.
func voiceName(characterVoiceID string) string {
	switch characterVoiceID {
	case "superman", "ultraman", "totoro":
		return "Fenrir"
	case "paw_chase", "peppa", "spongebob":
		return "Puck"
	case "minnie":
		return "Aoede"
	case "elsa":
		return "Zephyr"
	case "doraemon":
		return "Kore"
	default:
		return "Zephyr"
	}
}
