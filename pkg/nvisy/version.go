package nvisy

// Version is the SDK release, reported in the default User-Agent.
const Version = "0.1.0"
