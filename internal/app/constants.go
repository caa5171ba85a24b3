package app

// CreditsPerScorePoint converts a session's final score into credits paid out
// at game over. Keep this centralized so payout tuning stays in one place.
const CreditsPerScorePoint = 1
