package detrace

// Version is the release of the module and the detrace binary.
const Version = "0.1.0"
