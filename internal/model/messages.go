package model

// Disclaimer is shown with every advisory output
const Disclaimer = `Demo-only caregiver support tool (non-diagnostic).
- This tool does not provide medical diagnosis or treatment.
- It does not recommend starting/stopping/changing medications.
- If you think there is an emergency, call your local emergency number immediately.`

// EmergencyAdvisory is printed when red-flag keywords were detected
const EmergencyAdvisory = `Possible emergency ("red flag") detected
Based on the text you entered, this may need urgent attention.

Do now (general guidance):
1. If the person is in immediate danger or you suspect stroke/heart attack/severe breathing trouble: call emergency services now.
2. If unsure, contact a local nurse line / urgent care / clinician for guidance.
3. Stay with the person if it's safe to do so.`

// NonUrgentAdvisory is printed when no red-flag keywords were detected
const NonUrgentAdvisory = `No emergency keywords detected (based on simple rules)
This does not mean everything is fine. This tool is limited and rule-based.

Helpful next steps (general, non-medical):
- Monitor changes and write down what you observe (time, triggers, what helps).
- Consider contacting the person's clinician if symptoms are new, worsening, or concerning.
- Focus on comfort, hydration, rest, and safety in the environment (as appropriate).`

// CarePlan is the static plan & resources text behind the plan command
const CarePlan = `A simple caregiver plan (general):
1. Safety first: prevent falls, keep walkways clear, supervise if needed.
2. Observe + write it down: when it started, what changed, what helps/worsens.
3. Communicate: share the log with family/care team.
4. Escalate when needed: new/worsening symptoms, red flags, or caregiver intuition.

Helpful checklists (general):
- Water/fluids available (if safe)
- Comfortable position and temperature
- Noise/light reduced
- Med list and emergency contacts accessible
- Recent changes noted (sleep, food, routine, stress)

Emergency reminders:
- If severe breathing trouble, chest pain/pressure, stroke signs, seizure,
  uncontrolled bleeding, or unresponsiveness: call emergency services.`
