package engine

// UnlockedAvatars returns the avatars available at level, in catalog order.
func UnlockedAvatars(level int) []Avatar {
	var out []Avatar
	for _, a := range avatars {
		if a.MinLevel <= level {
			out = append(out, a)
		}
	}
	return out
}

// CanSelectAvatar returns an error if the avatar is unknown or still locked at level.
func CanSelectAvatar(level int, id string) error {
	a, ok := FindAvatar(id)
	if !ok {
		return ErrUnknownAvatar
	}
	if level < a.MinLevel {
		return AvatarLockedError{
			Avatar:        a.ID,
			RequiredLevel: a.MinLevel,
			CurrentLevel:  level,
		}
	}
	return nil
}
