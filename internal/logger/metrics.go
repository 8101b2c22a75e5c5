package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/tomasbasham/frontdesk"
)

// Ensure Metrics implements [frontdesk.MetricsHook].
var _ frontdesk.MetricsHook = (*Metrics)(nil)

// Metrics logs desk events. Personal details other than the id are left out
// of the log.
type Metrics struct {
	Logger logrus.FieldLogger
}

func (m *Metrics) OnAdmit(p frontdesk.Person, t frontdesk.Tier, position int) {
	m.Logger.WithFields(logrus.Fields{
		"id":       p.ID,
		"tier":     t.String(),
		"position": position,
	}).Info("person admitted")
}

func (m *Metrics) OnServe(p frontdesk.Person, t frontdesk.Tier, c frontdesk.Cursor) {
	m.Logger.WithFields(logrus.Fields{
		"id":     p.ID,
		"tier":   t.String(),
		"served": c.Served,
	}).Info("person attended")
}

func (m *Metrics) OnRemove(p frontdesk.Person, t frontdesk.Tier) {
	m.Logger.WithFields(logrus.Fields{
		"id":   p.ID,
		"tier": t.String(),
	}).Info("person removed")
}

func (m *Metrics) OnAdvance(from, to frontdesk.Tier) {
	m.Logger.WithFields(logrus.Fields{
		"from": from.String(),
		"to":   to.String(),
	}).Debug("scheduler advanced")
}
