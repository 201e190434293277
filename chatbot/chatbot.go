// Package chatbot implements a rule-based assistant for common HR
// questions, answering from the same records the API serves.
package chatbot

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"hr-management-backend/repository"
)

var (
	greetingPattern   = regexp.MustCompile(`\b(hello|hi|hey|good morning|good afternoon)\b`)
	balancePattern    = regexp.MustCompile(`\b(leave balance|remaining leave|leave days)\b`)
	applyPattern      = regexp.MustCompile(`\b(apply for leave|request leave|take leave)\b`)
	attendancePattern = regexp.MustCompile(`\b(attendance|check in|check out|last month|this month)\b`)
	payrollPattern    = regexp.MustCompile(`\b(payroll|salary|payslip|pay)\b`)
	policyPattern     = regexp.MustCompile(`\b(policy|policies|rules|guidelines)\b`)
	timesheetPattern  = regexp.MustCompile(`\b(timesheet|hours worked|overtime)\b`)
	trainingPattern   = regexp.MustCompile(`\b(training|course|certification)\b`)
	helpPattern       = regexp.MustCompile(`\b(help|what can you do|commands)\b`)
)

const annualLeaveDays = 25

// HRChatBot answers messages by matching them against a fixed rule
// list, most specific first.
type HRChatBot struct {
	attendance repository.AttendanceRepository
	leaves     repository.LeaveRepository
	timesheets repository.TimesheetRepository
}

func NewHRChatBot(attendance repository.AttendanceRepository, leaves repository.LeaveRepository, timesheets repository.TimesheetRepository) *HRChatBot {
	return &HRChatBot{attendance: attendance, leaves: leaves, timesheets: timesheets}
}

func (b *HRChatBot) GetResponse(userID int, message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	switch {
	case greetingPattern.MatchString(msg):
		return "Hello! I'm your HR Assistant. How can I help you today?"
	case balancePattern.MatchString(msg):
		return b.leaveBalance(userID)
	case applyPattern.MatchString(msg):
		return "To apply for leave, please visit the Leave section in your dashboard. You can submit a leave request there with the dates and reason."
	case attendancePattern.MatchString(msg):
		return b.attendanceInfo(userID, msg)
	case payrollPattern.MatchString(msg):
		return "For payroll information, please check your payslips in the Timesheet section or contact HR directly."
	case policyPattern.MatchString(msg):
		return policyInfo(msg)
	case timesheetPattern.MatchString(msg):
		return b.timesheetInfo(userID)
	case trainingPattern.MatchString(msg):
		return "For training information, please visit the Training & Development section in your dashboard."
	case helpPattern.MatchString(msg):
		return helpMessage()
	default:
		return "I'm sorry, I didn't understand that. Try asking about leave balance, attendance, policies, or type 'help' to see what I can assist with."
	}
}

func (b *HRChatBot) leaveBalance(userID int) string {
	taken := 0
	for _, leave := range b.leaves.ForEmployee(userID) {
		if leave.Status != "Approved" {
			continue
		}
		start, err1 := time.Parse("2006-01-02", leave.StartDate)
		end, err2 := time.Parse("2006-01-02", leave.EndDate)
		if err1 != nil || err2 != nil {
			continue
		}
		taken += int(end.Sub(start).Hours()/24) + 1
	}
	remaining := annualLeaveDays - taken
	return fmt.Sprintf("Your leave balance: %d days remaining out of %d annual leave days. You've taken %d days this year.", remaining, annualLeaveDays, taken)
}

func (b *HRChatBot) attendanceInfo(userID int, msg string) string {
	now := time.Now()
	period := "this month"
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	if strings.Contains(msg, "last month") {
		period = "last month"
		from = from.AddDate(0, -1, 0)
	}

	total, present, absent := 0, 0, 0
	for _, rec := range b.attendance.ForEmployee(userID) {
		day, err := time.ParseInLocation("2006-01-02", rec.Date, time.Local)
		if err != nil || day.Before(from) {
			continue
		}
		total++
		switch rec.Status {
		case "Present":
			present++
		case "Absent":
			absent++
		}
	}
	return fmt.Sprintf("Your attendance for %s: %d present, %d absent out of %d working days.", period, present, absent, total)
}

func policyInfo(msg string) string {
	switch {
	case strings.Contains(msg, "leave"):
		return "Leave Policy: Employees are entitled to 25 days annual leave per year. Leave requests must be submitted at least 2 weeks in advance for annual leave, or as soon as possible for emergency leave."
	case strings.Contains(msg, "attendance"):
		return "Attendance Policy: Regular working hours are 9 AM to 6 PM, Monday to Friday. Clock in/out using the attendance system. Late arrivals or early departures may affect leave balance."
	case strings.Contains(msg, "dress"), strings.Contains(msg, "code"):
		return "Dress Code: Business casual attire is required. Smart casual on Fridays. No jeans or sneakers in client-facing roles."
	default:
		return "For detailed HR policies, please visit the Help Centre section or contact HR directly. I can help with common queries about leave, attendance, and general policies."
	}
}

func (b *HRChatBot) timesheetInfo(userID int) string {
	entries := b.timesheets.ForEmployee(userID)
	if len(entries) == 0 {
		return "No timesheet entries found. Please submit your timesheets regularly."
	}

	latestDate := entries[0].Date
	for _, entry := range entries {
		if entry.Date > latestDate {
			latestDate = entry.Date
		}
	}
	totalHours := 0.0
	for _, entry := range entries {
		if entry.Date == latestDate {
			totalHours += entry.Hours
		}
	}
	return fmt.Sprintf("Your latest timesheet (%s): %g hours worked. Regular hours: 40 per week. Overtime rates apply after 40 hours.", latestDate, totalHours)
}

func helpMessage() string {
	return `I can help you with:
• Leave balance and applications
• Attendance information
• HR policies and guidelines
• Timesheet summaries
• Training information

Try asking:
- "What's my leave balance?"
- "Show my attendance for last month"
- "Tell me about leave policy"
- "How many hours did I work this week?"

For other queries, please contact HR directly.`
}
