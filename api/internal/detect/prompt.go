package detect

// Instruction is sent next to the image on every call.
const Instruction = `Analyze this image and determine if it was created by an AI image generator or if it is a photo of a real-world scene.
Respond with ONLY a JSON object, no markdown and no text outside it, with the following keys:
1. is_ai: (boolean, true if AI generated, false if real photo)
2. confidence: (number 0-100, the confidence level)
3. reason: (string, a brief explanation of the key visual indicators used for the determination, focusing on artifacts, texture, lighting, or common AI flaws).`
