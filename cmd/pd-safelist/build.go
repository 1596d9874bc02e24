package main

type buildInformation struct {
	Version string
	Commit  string
	Date    string
}

func (b buildInformation) versionString() string {
	if b.Version != "latest" {
		return b.Version
	}
	const shortCommitLength = 7
	if len(b.Commit) < shortCommitLength {
		return b.Version
	}
	return b.Version + " (" + b.Commit[:shortCommitLength] + ")"
}
