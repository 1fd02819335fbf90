package planner

// weeklySheet is the block-based weekly planner.
func (d *doc) weeklySheet() {
	d.header("WEEKLY THESIS PLANNER (BLOCK-BASED SCHEDULING)")

	d.label("Month: ____________     Week #: _____/29     Planned on: ___/____/2026")
	d.vspace(6)

	d.label("Weekly Outcome (what must exist by end of week):")
	d.grid(2, 1, 40)
	d.vspace(6)

	d.label("Available Work Blocks (tick):  [ ]1  [ ]2  [ ]3  [ ]4  [ ]5")
	d.vspace(6)

	d.label("Block Plan (one block per row):")
	d.grid(5, 1, 40)
	d.vspace(6)

	d.label("Minimum Viable Week (if only 1-2 blocks happen):")
	d.grid(2, 1, 40)
	d.vspace(6)

	d.label("End-of-Week Review (facts only):")
	d.grid(2, 1, 35)
	d.vspace(6)

	d.label("Remarks / Scratch / Overflow:")
	d.grid(1, 1, 180)
}

// dailySheet is the single-day focus sheet.
func (d *doc) dailySheet() {
	d.header("DAILY FOCUS SHEET    [Make a plan, Follow the plan]")

	d.label("Week #: ______/29      Date: ___/____/2026      [/] Done   [x] Not Done   [>] Moved Forward")
	d.vspace(6)

	d.label("Primary Task (ONE):")
	d.grid(1, 2, 40, d.pctCols(0.92, 0.08)...)
	d.vspace(6)

	d.label("Secondary Tasks (max 5):")
	d.grid(5, 2, 30, d.pctCols(0.92, 0.08)...)
	d.vspace(6)

	d.label("Notes / Equations / Sketches:")
	d.grid(4, 1, 28)
	d.vspace(6)

	d.label("End-of-Day Review (facts only):")
	d.grid(2, 2, 30)
	d.vspace(6)

	d.label("Remarks / Scratch / Overflow:")
	d.grid(1, 1, 265)
}

// experimentSheet is the experiment log.
func (d *doc) experimentSheet() {
	d.header("EXPERIMENT LOG")

	d.label("Hypothesis / Question:")
	d.grid(1, 1, 40)

	d.label("Setup (robot, sensors, params, code version):")
	d.grid(2, 2, 35)

	d.label("Results (what actually happened):")
	d.grid(2, 2, 35)

	d.label("Insights / Next Action:")
	d.grid(2, 1, 35)
}

// readingSheet is the literature reading sheet, the default page.
func (d *doc) readingSheet() {
	d.header("LITERATURE READING SHEET")

	d.label("Read on: ___/____/2026")
	d.vspace(6)

	d.boldLabel("Citation", " (authors, year, venue):")
	d.grid(1, 1, 45)
	d.vspace(6)

	d.boldLabel("Problem", " (what exactly are they solving?):")
	d.grid(1, 1, 60)
	d.vspace(6)

	d.boldLabel("Core Idea / Method", " (in my own words):")
	d.grid(5, 1, 25)
	d.vspace(6)

	d.boldLabel("Key Result / Claim", " (what did they show?):")
	d.grid(3, 1, 25)
	d.vspace(6)

	d.boldLabel("Assumptions / Limitations", " (what must be true?):")
	d.grid(2, 1, 30)
	d.vspace(6)

	d.boldLabel("Connection to My Thesis", " (USE / IGNORE / QUESTION):")
	d.grid(2, 1, 32)
	d.vspace(6)

	d.boldLabel("Action After Reading", " (one concrete next step):")
	d.grid(1, 1, 28)
	d.vspace(6)

	d.boldLabel("Remarks", ":")
	d.grid(1, 1, 120)
}

// chaptersSheet is the chapter/section progress tracker.
func (d *doc) chaptersSheet() {
	d.header("CHAPTER / SECTION PROGRESS TRACKER")
	d.label("Rows = chapters or sections | Columns = stages")
	d.grid(8, 6, 30)
}
